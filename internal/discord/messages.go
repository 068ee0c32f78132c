package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Coins!**\nYou don't have enough coins for this."
	MsgAlreadyClaimed    = "⏳ **Already Claimed**\nYour daily reward is not ready yet."
	MsgItemNotFound      = "❓ **Item Not Found**\nThat item is no longer in the shop."
	MsgRoleNotOwned      = "🎭 **Role Not Owned**\nSpin the wheel to win it first!"
	MsgRoleGrantFailed   = "❌ I couldn't give you that role. Ask an admin to check my permissions."
	MsgGuildOnly         = "❌ Roles can only be claimed inside the server."

	// Games
	MsgGameNotFound = "🃏 **Game Not Found**\nThat round has ended or expired."
	MsgNotYourGame  = "🚫 **Not Your Game**\nStart your own round from the panel."

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."

	// Admin
	MsgAdminOnly   = "❌ You need Administrator permissions to use this command!"
	MsgRoleMissing = "❌ You must select a Discord role when adding a role type item!"

	MsgUnavailable  = "🛠️ The economy is temporarily unavailable. Please try again."
	MsgGenericError = "❌ Something went wrong."
)

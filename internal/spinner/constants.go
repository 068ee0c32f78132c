package spinner

// PercentageFormat renders a probability percentage in previews.
const PercentageFormat = "%.2f%%"

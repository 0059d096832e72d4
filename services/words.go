package services

import (
	"math"
	"strings"
)

// AmountToWords converts a dollar amount to English words for the quote
// PDF footer. Cents are dropped after rounding to the nearest dollar.
// Example: 2970.00 → "Two Thousand Nine Hundred and Seventy Dollars Only"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	dollars := int64(math.Round(amount))

	if dollars == 0 {
		return "Zero Dollars Only"
	}

	return convertToWords(dollars) + " Dollars Only"
}

func convertToWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	if n >= 1000000000 {
		parts = append(parts, convertUnder1000(n/1000000000)+" Billion")
		n %= 1000000000
	}

	if n >= 1000000 {
		parts = append(parts, convertUnder1000(n/1000000)+" Million")
		n %= 1000000
	}

	if n >= 1000 {
		parts = append(parts, convertUnder1000(n/1000)+" Thousand")
		n %= 1000
	}

	if n >= 100 {
		parts = append(parts, ones[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	if n < 100 {
		return convertUnder100(n)
	}
	result := ones[n/100] + " Hundred"
	if n%100 != 0 {
		result += " " + convertUnder100(n%100)
	}
	return result
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

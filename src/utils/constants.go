package utils

// ShortDashDateLayout is the YYYY-MM-DD layout the YNAB API expects on
// transaction dates.
const ShortDashDateLayout = "2006-01-02"

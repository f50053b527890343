package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatCompactDate formata uma data no formato compacto YYYYMMDD exigido
// pelos recursos de campanha do Google Ads.
func FormatCompactDate(date time.Time) string {
	return date.Format("20060102")
}

package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/reportcal/internal/domain"
)

// legacyStatusValues maps the labels written by the browser widget.
var legacyStatusValues = map[string]domain.Status{
	"בתפקיד מחוץ ליחידה":  domain.StatusAwayFromUnit,
	"אחרי תורנות / משמרת": domain.StatusAfterShift,
	"חופשה שנתית":         domain.StatusAnnualLeave,
}

func encodeReports(m domain.ReportMap) (string, error) {
	if m == nil {
		m = domain.ReportMap{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encoding reports: %w", err)
	}
	return string(data), nil
}

// decodeReports parses a persisted map. Keys may be date-only or ISO
// timestamps. Any bad key or value fails the whole decode.
func decodeReports(raw string, loc *time.Location) (domain.ReportMap, error) {
	var entries map[string]string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, fmt.Errorf("decoding reports: %w", err)
	}

	m := make(domain.ReportMap, len(entries))
	for rawKey, rawStatus := range entries {
		key, err := domain.ParseDateKey(rawKey, loc)
		if err != nil {
			return nil, fmt.Errorf("decoding reports: %w", err)
		}
		status, ok := legacyStatusValues[rawStatus]
		if !ok {
			status, err = domain.ParseStatus(rawStatus)
			if err != nil {
				return nil, fmt.Errorf("decoding reports: %w", err)
			}
		}
		m[key] = status
	}
	return m, nil
}

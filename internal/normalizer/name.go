package normalizer

import "erap/internal/models"

// NameFor picks the display name column that matches the jurisdiction type.
func NameFor(kind string, rec models.RawRecord) string {
	switch kind {
	case models.TypeState:
		return rec.Value(models.ColState)
	case models.TypeCounty, models.TypeCity:
		return rec.Value(models.ColLocality)
	case models.TypeTribal, models.TypeTerritory:
		return rec.Value(models.ColTribalTerritory)
	}

	for _, col := range []string{models.ColLocality, models.ColTribalTerritory, models.ColState} {
		if v := rec.Value(col); v != "" {
			return v
		}
	}

	return ""
}

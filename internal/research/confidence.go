package research

// Volume bonus parameters: each document or precedent adds 0.01, capped
// at 0.1 overall.
const (
	volumeBonusPerItem = 0.01
	volumeBonusCap     = 0.1
)

// Confidence computes the overall result confidence:
// min(1, average document confidence + volume bonus). An empty document
// list yields 0 regardless of precedent count.
func Confidence(docs []LegalDocument, precedents []Precedent) float64 {
	if len(docs) == 0 {
		return 0
	}

	var sum float64
	for _, d := range docs {
		sum += d.ConfidenceScore
	}
	avg := sum / float64(len(docs))

	bonus := float64(len(docs)+len(precedents)) * volumeBonusPerItem
	if bonus > volumeBonusCap {
		bonus = volumeBonusCap
	}

	confidence := avg + bonus
	if confidence > 1 {
		return 1
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

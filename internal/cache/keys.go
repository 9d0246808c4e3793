package cache

import "time"

// SuggestionsTTL 圖表建議快取的過期時間
const SuggestionsTTL = 10 * time.Minute

// SuggestionsKey 圖表建議快取鍵，以資料集 id 為準
func SuggestionsKey(datasetID string) string {
	return "chart:suggestions:" + datasetID
}

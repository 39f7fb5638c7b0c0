package schema

const (
	ScanCollection = "scanReport"

	// MaxScanImages bounds the number of images attached to one scan.
	MaxScanImages = 3
)

// CapturedImage is an inline-encoded image attached to a scan. Data holds
// the bare base64 payload, never a data-URL.
type CapturedImage struct {
	MimeType string `bson:"mime_type" json:"mime_type"`
	Data     string `bson:"data" json:"data"`
}

// Place is a grounded medical facility suggestion. Places are derived
// per-scan from provider grounding metadata and are never persisted.
type Place struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ScanRecord is one completed scan in a user's history. Records are
// immutable once written; Timestamp is assigned by the store at write time.
type ScanRecord struct {
	ID        string          `bson:"_id" json:"id"`
	ProfileID string          `bson:"profile_id" json:"profile_id"`
	Symptoms  string          `bson:"symptoms" json:"symptoms"`
	Analysis  string          `bson:"analysis" json:"analysis"`
	Images    []CapturedImage `bson:"images,omitempty" json:"images,omitempty"`
	AgeAtScan int             `bson:"age_at_scan,omitempty" json:"age_at_scan,omitempty"`
	Timestamp int64           `bson:"ts" json:"ts"`
}

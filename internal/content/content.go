// Package content defines the config entry domain model, the validation
// rules applied at the API boundary, and the grouped read-view shaping.
package content

// Type classifies how a stored value should be presented to clients.
type Type string

const (
	// TypeText is an opaque text value, returned verbatim.
	TypeText Type = "text"

	// TypeImage is an opaque image reference (URL or asset key).
	TypeImage Type = "image"

	// TypeJSON is a JSON document stored as a string and decoded on read.
	TypeJSON Type = "json"
)

// StatusPublished is the only status written today. Reads filter on it so
// the status attribute stays available for a future draft/publish workflow.
const StatusPublished = "published"

// ValidApps is the closed set of client application namespaces.
var ValidApps = []string{"customer", "driver", "restaurant", "admin"}

// MaxValueBytes is the hard limit on the UTF-8 encoded value size (10KB).
// Values must be strictly smaller.
const MaxValueBytes = 10 * 1024

// Entry is the persisted config record. The identity of an entry is the
// tuple (app, environment, screen, key); environment lives only inside the
// sort key. Attribute names match the table layout:
//
//	pk = APP#{app}
//	sk = ENV#{env}#SCREEN#{screen}#KEY#{key}
type Entry struct {
	PK        string `dynamodbav:"pk" json:"-"`
	SK        string `dynamodbav:"sk" json:"-"`
	App       string `dynamodbav:"app" json:"app"`
	Screen    string `dynamodbav:"screen" json:"screen"`
	Key       string `dynamodbav:"key" json:"key"`
	Value     string `dynamodbav:"value" json:"value"`
	Type      Type   `dynamodbav:"type" json:"type"`
	Status    string `dynamodbav:"status" json:"status"`
	UpdatedAt string `dynamodbav:"updatedAt" json:"updatedAt"`
	UpdatedBy string `dynamodbav:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}

package vegalite

// ChannelDef is a single encoding entry. Encodings are kept in the order they were written.
type ChannelDef struct {
	Channel  Channel
	FieldDef *FieldDef
}

type Encoding []ChannelDef

// Get returns the field def on the channel, or nil.
func (encoding Encoding) Get(channel Channel) *FieldDef {
	for i := range encoding {
		if encoding[i].Channel == channel {
			return encoding[i].FieldDef
		}
	}
	return nil
}

type InvalidValuesMode string

const (
	InvalidValuesFilter InvalidValuesMode = "filter"
	// InvalidValuesKeep corresponds to "invalidValues": null and disables invalid value filtering.
	InvalidValuesKeep InvalidValuesMode = "keep"
)

type DataSpec struct {
	Name   string
	URL    string
	Values []map[string]interface{}
}

type Config struct {
	// InvalidValues is empty when the spec doesn't set it.
	InvalidValues InvalidValuesMode
}

type UnitSpec struct {
	Schema   string
	Data     DataSpec
	Mark     string
	Encoding Encoding
	Config   Config
}

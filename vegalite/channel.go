package vegalite

type Channel string

const (
	ChannelX       Channel = "x"
	ChannelY       Channel = "y"
	ChannelX2      Channel = "x2"
	ChannelY2      Channel = "y2"
	ChannelRow     Channel = "row"
	ChannelColumn  Channel = "column"
	ChannelColor   Channel = "color"
	ChannelOpacity Channel = "opacity"
	ChannelSize    Channel = "size"
	ChannelShape   Channel = "shape"
	ChannelText    Channel = "text"
	ChannelTooltip Channel = "tooltip"
	ChannelHref    Channel = "href"
	ChannelDetail  Channel = "detail"
	ChannelOrder   Channel = "order"
)

// Channels lists every channel in the order encodings are visited when the input doesn't dictate one.
var Channels = []Channel{
	ChannelX,
	ChannelY,
	ChannelX2,
	ChannelY2,
	ChannelRow,
	ChannelColumn,
	ChannelColor,
	ChannelOpacity,
	ChannelSize,
	ChannelShape,
	ChannelText,
	ChannelTooltip,
	ChannelHref,
	ChannelDetail,
	ChannelOrder,
}

var scaleChannels = map[Channel]bool{
	ChannelX:       true,
	ChannelY:       true,
	ChannelSize:    true,
	ChannelShape:   true,
	ChannelColor:   true,
	ChannelOpacity: true,
}

// IsScaleChannel reports whether values encoded on the channel pass through a scale.
// x2 and y2 share the scale of x and y and so aren't scale channels on their own.
func IsScaleChannel(channel Channel) bool {
	return scaleChannels[channel]
}

func IsPositionChannel(channel Channel) bool {
	return channel == ChannelX || channel == ChannelY
}

func ParseChannel(s string) (Channel, bool) {
	for _, channel := range Channels {
		if string(channel) == s {
			return channel, true
		}
	}
	return "", false
}

func (c Channel) String() string {
	return string(c)
}

// Package radar converts the radar-tile provider's frame catalog into a
// scrubbable timeline and drives frame playback.
package radar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// tileSuffix fixes tile size (256px), color scheme (2) and the smoothing/
// snow options (1_1) the provider bakes into its tile paths.
const tileSuffix = "/256/{z}/{x}/{y}/2/1_1.png"

// MapsResponse mirrors the radar provider's weather-maps JSON.
type MapsResponse struct {
	Version   string `json:"version"`
	Generated int64  `json:"generated"`
	Host      string `json:"host"`
	Radar     struct {
		Past    []RawFrame `json:"past"`
		Nowcast []RawFrame `json:"nowcast"`
	} `json:"radar"`
}

// RawFrame is one catalog entry as the provider ships it.
type RawFrame struct {
	Time int64  `json:"time"`
	Path string `json:"path"`
}

// Frame is one renderable radar frame. TileURL keeps {z}/{x}/{y}
// placeholders that are substituted at tile-fetch time.
type Frame struct {
	Timestamp int64  `json:"timestamp"`
	Path      string `json:"path"`
	TileURL   string `json:"tileUrl"`
}

// Timeline is the ordered pair of historical and forecast frame sequences.
// Both are chronologically increasing; past entries sit at or before the
// provider's generation instant, nowcast entries at or after it. The
// timeline is replaced wholesale on each refresh, never patched.
type Timeline struct {
	Generated int64   `json:"generated"`
	Host      string  `json:"host"`
	Past      []Frame `json:"past"`
	Nowcast   []Frame `json:"nowcast"`
}

// TimelineFromMaps builds a Timeline from a raw weather-maps payload.
func TimelineFromMaps(raw *MapsResponse) Timeline {
	if raw == nil {
		return Timeline{}
	}

	tl := Timeline{
		Generated: raw.Generated,
		Host:      raw.Host,
		Past:      framesFrom(raw.Host, raw.Radar.Past),
		Nowcast:   framesFrom(raw.Host, raw.Radar.Nowcast),
	}
	return tl
}

func framesFrom(host string, raw []RawFrame) []Frame {
	if len(raw) == 0 {
		return nil
	}
	out := make([]Frame, 0, len(raw))
	for _, f := range raw {
		out = append(out, Frame{
			Timestamp: f.Time,
			Path:      f.Path,
			TileURL:   host + f.Path + tileSuffix,
		})
	}
	return out
}

// AllFrames returns the display sequence: past frames followed by nowcast
// frames.
func (t Timeline) AllFrames() []Frame {
	out := make([]Frame, 0, len(t.Past)+len(t.Nowcast))
	out = append(out, t.Past...)
	out = append(out, t.Nowcast...)
	return out
}

// TileURLFor resolves a frame's tile template for a concrete tile address.
func TileURLFor(f Frame, z, x, y int) string {
	r := strings.NewReplacer(
		"{z}", strconv.Itoa(z),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	)
	return r.Replace(f.TileURL)
}

// FrameLabel renders a frame's offset from now for the scrubber: "Now" at
// zero, "+Nm" for nowcast frames, "-Nm" for past frames.
func FrameLabel(f Frame, now time.Time) string {
	diffMins := int(math.Round(time.Unix(f.Timestamp, 0).Sub(now).Seconds() / 60))
	if diffMins == 0 {
		return "Now"
	}
	if diffMins > 0 {
		return fmt.Sprintf("+%dm", diffMins)
	}
	return fmt.Sprintf("%dm", diffMins)
}

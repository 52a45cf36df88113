package comscore

import (
	"math"
	"strconv"

	"github.com/prebid/comscore-destination/analytics"
)

const nullLabel = "*null"

// field maps one logical property to a label. Keys are tried in order; camelCase comes
// first and snake_case is the fallback.
type field struct {
	label string
	keys  []string
}

var playbackFields = []field{
	{label: "ns_st_mp", keys: []string{"videoPlayer", "video_player"}},
	{label: "ns_st_vo", keys: []string{"sound"}},
}

var contentFields = []field{
	{label: "ns_st_ci", keys: []string{"assetId", "asset_id"}},
	{label: "ns_st_ep", keys: []string{"title"}},
	{label: "ns_st_ge", keys: []string{"keywords"}},
	{label: "ns_st_sn", keys: []string{"season"}},
	{label: "ns_st_en", keys: []string{"episode"}},
	{label: "ns_st_ge", keys: []string{"genre"}},
	{label: "ns_st_pr", keys: []string{"program"}},
	{label: "ns_st_st", keys: []string{"channel"}},
	{label: "ns_st_pu", keys: []string{"publisher"}},
	{label: "ns_st_ce", keys: []string{"fullEpisode", "full_episode"}},
	{label: "ns_st_pn", keys: []string{"podId", "pod_id"}},
}

var adFields = []field{
	{label: "ns_st_ami", keys: []string{"assetId", "asset_id"}},
	{label: "ns_st_amt", keys: []string{"title"}},
	{label: "ns_st_pu", keys: []string{"publisher"}},
}

var adPositions = map[string]bool{
	"pre-roll":  true,
	"mid-roll":  true,
	"post-roll": true,
}

// Keys shared by the session cache and the metadata calls.
const (
	labelContentID = "ns_st_ci"
	labelAdType    = "ns_st_ad"
)

// MapPlayback builds the playback labels applied to the streaming session.
func MapPlayback(properties, options *analytics.Properties) *Labels {
	labels := project(properties, playbackFields)

	screen := "norm"
	if properties.LookupBool(false, "fullScreen", "full_screen") {
		screen = "full"
	}
	labels.Set("ns_st_ws", screen)

	labels.Set("ns_st_br", thousandfold(properties, "bitrate"))

	setCustomLabels(labels, properties, options)
	return labels
}

// MapContent builds the content metadata labels.
func MapContent(properties, options *analytics.Properties) *Labels {
	labels := project(properties, contentFields)

	labels.Set("ns_st_cl", thousandfold(properties, "totalLength", "total_length"))

	classification := "vc00"
	if v, ok := options.LookupString("contentClassificationType"); ok {
		classification = v
	}
	labels.Set("ns_st_ct", classification)

	if v, ok := options.LookupString("digitalAirdate"); ok {
		labels.Set("ns_st_ddt", v)
	}
	if v, ok := options.LookupString("tvAirdate"); ok {
		labels.Set("ns_st_tdt", v)
	}

	setCustomLabels(labels, properties, options)
	return labels
}

// MapAd builds the advertisement metadata labels.
func MapAd(properties, options *analytics.Properties) *Labels {
	labels := project(properties, adFields)

	labels.Set("ns_st_cl", thousandfold(properties, "totalLength", "total_length"))

	classification := "va00"
	if v, ok := options.LookupString("adClassificationType"); ok {
		classification = v
	}
	labels.Set("ns_st_ct", classification)

	labels.Set(labelAdType, adPosition(properties))

	setCustomLabels(labels, properties, options)
	return labels
}

// thousandfold converts seconds to milliseconds and kbps to bps. Fractions are scaled before
// rounding so 2.5 kbps stays 2500 bps.
func thousandfold(properties *analytics.Properties, keys ...string) string {
	if v, ok := properties.Lookup(keys...); ok && v.Kind() == analytics.KindInt {
		i, _ := v.Int64()
		return strconv.FormatInt(i*1000, 10)
	}
	return strconv.FormatInt(int64(math.Round(properties.LookupFloat(0, keys...)*1000)), 10)
}

// MapGeneric builds the hidden event labels of an event outside the video vocabulary:
// the event name followed by every non-null property.
func MapGeneric(name string, properties *analytics.Properties) *Labels {
	labels := NewLabels(properties.Len() + 1)
	labels.Set("name", name)
	properties.Each(func(key string, value analytics.Value) {
		if key == "name" || value.IsNull() {
			return
		}
		labels.Set(key, value.String())
	})
	return labels
}

// StringLabels converts a property bag to labels, skipping null values.
func StringLabels(properties *analytics.Properties) *Labels {
	labels := NewLabels(properties.Len())
	properties.Each(func(key string, value analytics.Value) {
		if value.IsNull() {
			return
		}
		labels.Set(key, value.String())
	})
	return labels
}

func project(properties *analytics.Properties, fields []field) *Labels {
	labels := NewLabels(len(fields) + 8)
	for _, f := range fields {
		if v, ok := properties.LookupString(f.keys...); ok {
			labels.Set(f.label, v)
		}
	}
	return labels
}

func adPosition(properties *analytics.Properties) string {
	if t, ok := properties.LookupString("type"); ok && adPositions[t] {
		return t
	}
	return "1"
}

// setCustomLabels resolves c3, c4 and c6: destination options win over properties and
// "*null" is written when neither has a value.
func setCustomLabels(labels *Labels, properties, options *analytics.Properties) {
	for _, key := range []string{"c3", "c4", "c6"} {
		if v, ok := options.LookupString(key); ok {
			labels.Set(key, v)
		} else if v, ok := properties.LookupString(key); ok {
			labels.Set(key, v)
		} else {
			labels.Set(key, nullLabel)
		}
	}
}

package comscore

import (
	"testing"

	"github.com/prebid/comscore-destination/analytics"
	"github.com/stretchr/testify/assert"
)

type labelPair struct {
	key   string
	value string
}

func assertLabels(t *testing.T, expected []labelPair, actual *Labels, description string) {
	t.Helper()
	keys := make([]string, 0, len(expected))
	values := make(map[string]string, len(expected))
	for _, p := range expected {
		keys = append(keys, p.key)
		values[p.key] = p.value
	}
	assert.Equal(t, keys, actual.Keys(), description+": label order")
	assert.Equal(t, values, actual.Map(), description+": label values")
}

func TestMapPlayback(t *testing.T) {
	testCases := []struct {
		description string
		properties  *analytics.Properties
		options     *analytics.Properties
		expected    []labelPair
	}{
		{
			description: "snake case input",
			properties:  analytics.NewProperties("asset_id", 1234, "video_player", "youtube", "sound", 80, "fullScreen", false),
			expected: []labelPair{
				{"ns_st_mp", "youtube"}, {"ns_st_vo", "80"}, {"ns_st_ws", "norm"}, {"ns_st_br", "0"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "camel case wins and bitrate is multiplied",
			properties: analytics.NewProperties("video_player", "vimeo", "videoPlayer", "youtube",
				"full_screen", true, "bitrate", 40),
			expected: []labelPair{
				{"ns_st_mp", "youtube"}, {"ns_st_ws", "full"}, {"ns_st_br", "40000"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "fractional bitrate is scaled before rounding",
			properties:  analytics.NewProperties("bitrate", 2.5),
			expected: []labelPair{
				{"ns_st_ws", "norm"}, {"ns_st_br", "2500"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "numeric string bitrate",
			properties:  analytics.NewProperties("bitrate", "0.75"),
			expected: []labelPair{
				{"ns_st_ws", "norm"}, {"ns_st_br", "750"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "options win over properties for c3 c4 c6",
			properties:  analytics.NewProperties("c3", "property", "c4", 4, "fullScreen", true),
			options:     analytics.NewProperties("c3", "option", "c6", true),
			expected: []labelPair{
				{"ns_st_ws", "full"}, {"ns_st_br", "0"},
				{"c3", "option"}, {"c4", "4"}, {"c6", "true"},
			},
		},
		{
			description: "nothing at all",
			expected: []labelPair{
				{"ns_st_ws", "norm"}, {"ns_st_br", "0"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
	}

	for _, test := range testCases {
		assertLabels(t, test.expected, MapPlayback(test.properties, test.options), test.description)
	}
}

func TestMapContent(t *testing.T) {
	testCases := []struct {
		description string
		properties  *analytics.Properties
		options     *analytics.Properties
		expected    []labelPair
	}{
		{
			description: "full content",
			properties: analytics.NewProperties(
				"asset_id", 3543,
				"pod_id", "65462",
				"title", "Big Trouble in Little Sanchez",
				"season", 2,
				"episode", 7,
				"genre", "cartoon",
				"program", "Rick and Morty",
				"channel", "adult swim",
				"publisher", "Turner Broadcasting System",
				"full_episode", true,
				"total_length", 400,
				"airdate", "1991-08-13",
			),
			options: analytics.NewProperties(
				"contentClassificationType", "vc12",
				"digitalAirdate", "2017-08-13",
				"tvAirdate", "2017-08-12",
				"c4", "cfour",
			),
			expected: []labelPair{
				{"ns_st_ci", "3543"}, {"ns_st_ep", "Big Trouble in Little Sanchez"},
				{"ns_st_sn", "2"}, {"ns_st_en", "7"}, {"ns_st_ge", "cartoon"}, {"ns_st_pr", "Rick and Morty"},
				{"ns_st_st", "adult swim"}, {"ns_st_pu", "Turner Broadcasting System"}, {"ns_st_ce", "true"},
				{"ns_st_pn", "65462"}, {"ns_st_cl", "400000"}, {"ns_st_ct", "vc12"},
				{"ns_st_ddt", "2017-08-13"}, {"ns_st_tdt", "2017-08-12"},
				{"c3", "*null"}, {"c4", "cfour"}, {"c6", "*null"},
			},
		},
		{
			description: "defaults, airdates never come from properties",
			properties:  analytics.NewProperties("assetId", "abc", "totalLength", 1.5, "digitalAirdate", "2017-08-13"),
			expected: []labelPair{
				{"ns_st_ci", "abc"}, {"ns_st_cl", "1500"}, {"ns_st_ct", "vc00"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "genre overrides keywords",
			properties:  analytics.NewProperties("keywords", "funny", "genre", "cartoon"),
			expected: []labelPair{
				{"ns_st_ge", "cartoon"}, {"ns_st_cl", "0"}, {"ns_st_ct", "vc00"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
	}

	for _, test := range testCases {
		assertLabels(t, test.expected, MapContent(test.properties, test.options), test.description)
	}
}

func TestMapAd(t *testing.T) {
	testCases := []struct {
		description string
		properties  *analytics.Properties
		options     *analytics.Properties
		expected    []labelPair
	}{
		{
			description: "pre-roll",
			properties: analytics.NewProperties(
				"asset_id", 4311,
				"pod_id", "adSegA",
				"type", "pre-roll",
				"total_length", 120,
				"publisher", "Carl's Junior",
				"title", "Rick and Morty Ad",
			),
			options: analytics.NewProperties("adClassificationType", "va14"),
			expected: []labelPair{
				{"ns_st_ami", "4311"}, {"ns_st_amt", "Rick and Morty Ad"}, {"ns_st_pu", "Carl's Junior"},
				{"ns_st_cl", "120000"}, {"ns_st_ct", "va14"}, {"ns_st_ad", "pre-roll"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "unknown ad type",
			properties:  analytics.NewProperties("assetId", "a1", "type", "overlay"),
			expected: []labelPair{
				{"ns_st_ami", "a1"}, {"ns_st_cl", "0"}, {"ns_st_ct", "va00"}, {"ns_st_ad", "1"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
		{
			description: "post-roll from camel case length",
			properties:  analytics.NewProperties("type", "post-roll", "totalLength", 30, "total_length", 60),
			expected: []labelPair{
				{"ns_st_cl", "30000"}, {"ns_st_ct", "va00"}, {"ns_st_ad", "post-roll"},
				{"c3", "*null"}, {"c4", "*null"}, {"c6", "*null"},
			},
		},
	}

	for _, test := range testCases {
		assertLabels(t, test.expected, MapAd(test.properties, test.options), test.description)
	}
}

func TestMapGeneric(t *testing.T) {
	properties := analytics.NewProperties("value", 20.0, "product", "Ukelele", "name", "ignored", "coupon", nil)

	assertLabels(t, []labelPair{
		{"name", "Completed Order"}, {"value", "20.0"}, {"product", "Ukelele"},
	}, MapGeneric("Completed Order", properties), "generic")

	assertLabels(t, []labelPair{{"name", "foo"}}, MapGeneric("foo", nil), "no properties")
}

func TestMappersArePure(t *testing.T) {
	properties := analytics.NewProperties("asset_id", 1, "title", "t", "total_length", 2, "type", "mid-roll", "bitrate", 3)
	options := analytics.NewProperties("c6", "six")

	for _, mapper := range []func(p, o *analytics.Properties) *Labels{MapPlayback, MapContent, MapAd} {
		first := mapper(properties, options)
		second := mapper(properties, options)
		assert.Equal(t, first.Keys(), second.Keys())
		assert.Equal(t, first.Map(), second.Map())
	}
	assert.Equal(t, []string{"asset_id", "title", "total_length", "type", "bitrate"}, properties.Keys(), "properties are not modified")
}

func TestStringLabels(t *testing.T) {
	traits := analytics.NewProperties("firstName", "Kylo", "age", 30, "score", 1e7, "nickname", nil)

	assertLabels(t, []labelPair{
		{"firstName", "Kylo"}, {"age", "30"}, {"score", "1.0E7"},
	}, StringLabels(traits), "traits")
}

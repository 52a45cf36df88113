package comscoretest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prebid/comscore-destination/analytics"
	"github.com/prebid/comscore-destination/analytics/comscore"
	"github.com/prebid/comscore-destination/logger"
	"github.com/prebid/comscore-destination/util/jsonutil"
	"github.com/stretchr/testify/require"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// RunJSONTests runs every JSON fixture under directory. Each fixture is a testSpec: the
// messages are decoded and dispatched to an integration built from the settings, and the
// recorded native SDK calls must match expectedCalls.
//
// Fixtures under an "exemplary" subdirectory show the typical flows. Fixtures under
// "supplemental" cover edge cases.
func RunJSONTests(t *testing.T, directory string) {
	t.Helper()
	runTests(t, filepath.Join(directory, "exemplary"))
	runTests(t, filepath.Join(directory, "supplemental"))
}

type testSpec struct {
	Description   string                 `json:"description"`
	Settings      map[string]interface{} `json:"settings"`
	Messages      []json.RawMessage      `json:"messages"`
	ExpectedCalls []json.RawMessage      `json:"expectedCalls"`
}

func runTests(t *testing.T, directory string) {
	t.Helper()
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		return
	}

	files, err := os.ReadDir(directory)
	require.NoError(t, err, "Failed to read folder %s", directory)

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}
		filename := filepath.Join(directory, file.Name())
		t.Run(filename, func(t *testing.T) {
			spec, err := loadFile(filename)
			require.NoError(t, err)
			runSpec(t, filename, spec)
		})
	}
}

func loadFile(filename string) (*testSpec, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to read file %s: %v", filename, err)
	}

	var spec testSpec
	if err := jsonutil.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("Failed to unmarshal JSON from file %s: %v", filename, err)
	}
	return &spec, nil
}

func runSpec(t *testing.T, filename string, spec *testSpec) {
	var calls []comscore.Call
	integration := comscore.New(context.Background(), spec.Settings, comscore.Deps{
		Sink:   comscore.NewCallSink(func(call comscore.Call) { calls = append(calls, call) }),
		Logger: logger.Nop(),
	})

	for i, raw := range spec.Messages {
		msg, err := analytics.DecodeMessage(raw)
		require.NoError(t, err, "%s: message %d", filename, i)
		analytics.Dispatch(integration, msg)
	}
	integration.Shutdown()

	require.Len(t, calls, len(spec.ExpectedCalls), "%s: %s", filename, spec.Description)
	for i, call := range calls {
		actual, err := jsonutil.Marshal(call)
		require.NoError(t, err, "%s: marshal call %d", filename, i)
		diffJSON(t, fmt.Sprintf("%s: call %d (%s)", filename, i, call), actual, spec.ExpectedCalls[i])
	}
}

// diffJSON fails the test with a readable diff when actual and expected are not the same
// JSON document. Object key order is ignored.
func diffJSON(t *testing.T, description string, actual []byte, expected []byte) {
	t.Helper()

	diff, err := gojsondiff.New().Compare(actual, expected)
	if err != nil {
		t.Fatalf("%s json diff failed. %v", description, err)
	}

	if diff.Modified() {
		var left interface{}
		if err := jsonutil.Unmarshal(actual, &left); err != nil {
			t.Fatalf("%s json did not match, but unmarshalling failed. %v", description, err)
		}
		printer := formatter.NewAsciiFormatter(left, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
		})
		output, err := printer.Format(diff)
		if err != nil {
			t.Errorf("%s did not match, but diff formatting failed. %v", description, err)
		} else {
			t.Errorf("%s json did not match expected.\n\n%s", description, output)
		}
	}
}

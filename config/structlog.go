package config

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/golang/glog"
)

type logMsg func(string, ...interface{})

var mapregex = regexp.MustCompile(`mapstructure:"([^"]+)"`)
var blocklistregexp = []*regexp.Regexp{
	regexp.MustCompile("password"),
	regexp.MustCompile("secret"),
}

// logStruct logs every leaf field of the configuration, one line per key.
func logStruct(v interface{}) {
	logStructWithLogger(reflect.ValueOf(v), "", glog.Infof)
}

func logStructWithLogger(v reflect.Value, prefix string, logger logMsg) {
	if v.Kind() != reflect.Struct {
		glog.Fatalf("logStructWithLogger called on type %s, must be a struct", v.Type().String())
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fieldName := fieldNameByTag(t.Field(i))
		logValue(v.Field(i), fmt.Sprintf("%s%s", prefix, fieldName), logger)
	}
}

func logMapWithLogger(v reflect.Value, prefix string, logger logMsg) {
	for _, k := range v.MapKeys() {
		logValue(v.MapIndex(k), fmt.Sprintf("%s[%s]", prefix, k.String()), logger)
	}
}

func logValue(v reflect.Value, fullName string, logger logMsg) {
	switch v.Kind() {
	case reflect.Struct:
		logStructWithLogger(v, fullName+".", logger)
	case reflect.Map:
		logMapWithLogger(v, fullName, logger)
	default:
		if isBlocklisted(fullName) {
			logger("%s: <REDACTED>", fullName)
		} else {
			logger("%s: %s", fullName, fmt.Sprintf("%v", v))
		}
	}
}

func fieldNameByTag(f reflect.StructField) string {
	match := mapregex.FindStringSubmatch(string(f.Tag))
	if len(match) < 2 {
		return fmt.Sprintf("((%s))", f.Name)
	}
	return match[1]
}

func isBlocklisted(name string) bool {
	for _, r := range blocklistregexp {
		if r.MatchString(name) {
			return true
		}
	}
	return false
}

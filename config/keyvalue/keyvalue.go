// Package keyvalue turns a go-simpler.org/env tagged configuration struct into
// a sorted list of KEY=value pairs, so the running configuration can be saved
// as a .env file and edited.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs, sortable by key.
type KVSlice []KV

func (kv KVSlice) Len() int           { return len(kv) }
func (kv KVSlice) Less(i, j int) bool { return kv[i].Key < kv[j].Key }
func (kv KVSlice) Swap(i, j int)      { kv[i], kv[j] = kv[j], kv[i] }

// EnvKV lists the `env` tagged fields of cfg, which may be a struct or a
// pointer to one. Slices of strings are joined with commas; fields without an
// env tag are skipped.
func EnvKV(cfg any) (m KVSlice) {
	v := reflect.Indirect(reflect.ValueOf(cfg))
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		k := t.Field(i).Tag.Get("env")
		if k == "" {
			continue
		}
		var val string
		switch f := v.Field(i).Interface().(type) {
		case string:
			val = f
		case []string:
			val = strings.Join(f, ",")
		default:
			val = fmt.Sprint(f)
		}
		m = append(m, KV{k, val})
	}
	sort.Sort(m)
	return
}

// PrintEnv writes the configuration as .env lines.
func PrintEnv(cfg any, printer io.Writer) {
	for _, kv := range EnvKV(cfg) {
		_, _ = fmt.Fprintf(printer, "%s=%s\n", kv.Key, kv.Value)
	}
}

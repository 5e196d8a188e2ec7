// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package utils provides helpers for inspecting generated values
package utils

import (
	"bytes"
	"fmt"
	"reflect"
	"sort"
)

// valuer is implemented by the container types in the collections package
type valuer interface {
	Len() int
}

// DumpStructure returns an indented, multi-line rendering of a generated value.
// Map keys are sorted by their formatted form so the output is stable.
func DumpStructure(data any, prefix string) string {
	return dumpValue(reflect.ValueOf(data), prefix)
}

func dumpValue(v reflect.Value, prefix string) string {
	var ret bytes.Buffer
	if !v.IsValid() {
		return fmt.Sprintf("%s<nil>,\n", prefix)
	}
	// Add 2 more spaces to the prefix for nested values
	newPrefix := fmt.Sprintf("  %s", prefix)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%s%d,\n", prefix, v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, v.Uint(), v.Uint())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return fmt.Sprintf("%s<nil>,\n", prefix)
		}
		if _, ok := v.Interface().(valuer); ok && v.Kind() == reflect.Pointer {
			return dumpContainer(v, prefix)
		}
		return dumpValue(v.Elem(), prefix)
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("%s<bytes> (length %d),\n", prefix, v.Len())
		}
		ret.WriteString(fmt.Sprintf("%s[\n", prefix))
		for i := range v.Len() {
			ret.WriteString(dumpValue(v.Index(i), newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s],\n", prefix))
	case reflect.Map:
		ret.WriteString(fmt.Sprintf("%s{\n", prefix))
		keys := v.MapKeys()
		formatted := make([]string, len(keys))
		for i, key := range keys {
			formatted[i] = fmt.Sprintf("%#v", key.Interface())
		}
		order := make([]int, len(keys))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			return formatted[order[a]] < formatted[order[b]]
		})
		for _, idx := range order {
			ret.WriteString(fmt.Sprintf("%s%s =>\n", newPrefix, formatted[idx]))
			ret.WriteString(dumpValue(v.MapIndex(keys[idx]), "  "+newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	case reflect.Struct:
		ret.WriteString(fmt.Sprintf("%s%s{\n", prefix, v.Type().Name()))
		for i := range v.NumField() {
			field := v.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			ret.WriteString(fmt.Sprintf("%s%s:\n", newPrefix, field.Name))
			ret.WriteString(dumpValue(v.Field(i), "  "+newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v.Interface())
	}
	return ret.String()
}

// dumpContainer renders a collections type through its Values or Sorted method.
// Ordered maps are rendered as key => value pairs in key order.
func dumpContainer(v reflect.Value, prefix string) string {
	if keys, ok := callNoArgs(v, "Keys"); ok {
		if values, ok := callNoArgs(v, "Values"); ok && keys.Len() == values.Len() {
			var ret bytes.Buffer
			newPrefix := fmt.Sprintf("  %s", prefix)
			ret.WriteString(fmt.Sprintf("%s{\n", prefix))
			for i := range keys.Len() {
				ret.WriteString(fmt.Sprintf("%s%#v =>\n", newPrefix, keys.Index(i).Interface()))
				ret.WriteString(dumpValue(values.Index(i), "  "+newPrefix))
			}
			ret.WriteString(fmt.Sprintf("%s},\n", prefix))
			return ret.String()
		}
	}
	for _, name := range []string{"Values", "Sorted"} {
		if ret, ok := callNoArgs(v, name); ok {
			return dumpValue(ret, prefix)
		}
	}
	return fmt.Sprintf("%s<%s> (length %d),\n", prefix, v.Type(), v.Interface().(valuer).Len())
}

func callNoArgs(v reflect.Value, name string) (reflect.Value, bool) {
	method := v.MethodByName(name)
	if !method.IsValid() || method.Type().NumIn() != 0 || method.Type().NumOut() != 1 {
		return reflect.Value{}, false
	}
	return method.Call(nil)[0], true
}

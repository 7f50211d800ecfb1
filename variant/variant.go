/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

/*
Package variant describes the build configuration of the running binary.

Two properties of a build matter when validating the fast time path:
how the binary was linked (static or dynamic) and the width of its data
model (ILP32 or LP64). Linkage is selected at build time with the
linkage_static or linkage_dynamic build tag, ABI width comes from the
compiled word size. Neither is ever detected at runtime.
*/
package variant

import (
	"fmt"
	"math/bits"
)

// Linkage is how the binary was linked
type Linkage string

// Supported linkage labels
const (
	LinkageStatic  Linkage = "static"
	LinkageDynamic Linkage = "dynamic"
	LinkageUnknown Linkage = "unknown"
)

// ABI is the data model of the binary
type ABI string

// Supported data models
const (
	ABINarrow ABI = "ILP32"
	ABIWide   ABI = "LP64"
)

// Tag identifies the build variant a check ran under
type Tag struct {
	Linkage Linkage
	ABI     ABI
}

// String returns tag formatted as report line prefix, e.g. [static-LP64]
func (t Tag) String() string {
	return fmt.Sprintf("[%s-%s]", t.Linkage, t.ABI)
}

// abiFor maps word size in bits to the data model
func abiFor(wordSize int) ABI {
	if wordSize == 64 {
		return ABIWide
	}
	return ABINarrow
}

var current = Tag{Linkage: linkage, ABI: abiFor(bits.UintSize)}

// Current returns the tag of this binary
func Current() Tag {
	return current
}

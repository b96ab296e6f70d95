// Package model defines stable boundary types for tooling and API layers.
//
// Wire identity (the fixed payload arms and the framed record) is unaffected
// by any projection. These structs are the only types intended for direct
// JSON serialization by consumers.
package model

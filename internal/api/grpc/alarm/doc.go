// Package alarm implements the gRPC transport for the alarm engine.
//
// It adapts domain types to protobuf messages, accepts "#N" position targets
// next to alarm IDs and maps engine errors to gRPC status codes.
package alarm

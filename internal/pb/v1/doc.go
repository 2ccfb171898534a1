// Package pb holds the AlarmService gRPC contract generated from
// api/alarmcountdown/v1/alarm.proto, plus the mapping between its messages
// and the domain types.
package pb

//go:generate protoc -I ../../../api --go_out=../../.. --go_opt=module=github.com/oshokin/alarm-countdown --go-grpc_out=../../.. --go-grpc_opt=module=github.com/oshokin/alarm-countdown alarmcountdown/v1/alarm.proto

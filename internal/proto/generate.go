// Package proto holds the generated gatekeeper.v1 messages and gRPC stubs.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gatekeeper --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gatekeeper gatekeeper/v1/gatekeeper.proto

// Package visionv1 holds the generated gRPC bindings for the vision
// sidecar. Regenerate after editing vision.proto:
//
//	go generate ./proto
package visionv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative vision.proto

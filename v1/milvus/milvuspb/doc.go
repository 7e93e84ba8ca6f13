// Package milvuspb contains hand-maintained Go bindings for the
// milvus.grpc.MilvusService RPC protocol (the Milvus 0.5.x line).
//
// The upstream protocol is frozen, so the bindings are written and kept by
// hand against milvus.proto instead of being regenerated: plain structs with
// protobuf struct tags, plus client and server stubs over the standard gRPC
// plumbing. Every message implements the legacy proto.Message methods
// (Reset, String, ProtoMessage), which is what the default gRPC codec needs
// to marshal tag-derived messages.
//
// Field numbers are wire contract. When touching a message, cross-check it
// against milvus.proto and extend the round-trip test in messages_test.go.
//
// Applications normally do not use this package directly; the typed surface
// in the parent milvus package wraps it.
package milvuspb

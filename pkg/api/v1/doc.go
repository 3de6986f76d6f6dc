// Package v1 is the zinspector RPC surface generated from
// api/zinspector/v1/zinspector.proto, plus client-side helpers that decode
// the domain error carried by a failed call.
//
//	conn, _ := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
//	c := v1.NewZInspectorClient(conn)
//	created, _ := c.CreateProject(ctx, &v1.CreateProjectRequest{Name: "Demo"})
package v1

//go:generate protoc -I ../../../api --go_out=../../.. --go_opt=module=github.com/fyrsmithlabs/zinspector --go-grpc_out=../../.. --go-grpc_opt=module=github.com/fyrsmithlabs/zinspector zinspector/v1/zinspector.proto

package milvuspb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// Compile-time assertions.
var _ context.Context
var _ grpc.ClientConnInterface

const _ = grpc.SupportPackageIsVersion7

// Client API

type MilvusServiceClient interface {
	CreateTable(ctx context.Context, in *TableSchema, opts ...grpc.CallOption) (*Status, error)
	HasTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*BoolReply, error)
	DropTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error)
	CreateIndex(ctx context.Context, in *IndexParam, opts ...grpc.CallOption) (*Status, error)
	DescribeIndex(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*IndexParam, error)
	DropIndex(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error)
	PreloadTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error)
	Insert(ctx context.Context, in *InsertParam, opts ...grpc.CallOption) (*VectorIds, error)
	Search(ctx context.Context, in *SearchParam, opts ...grpc.CallOption) (*TopKQueryResultList, error)
	SearchInFiles(ctx context.Context, in *SearchInFilesParam, opts ...grpc.CallOption) (*TopKQueryResultList, error)
	DescribeTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*TableSchema, error)
	ShowTables(ctx context.Context, in *Command, opts ...grpc.CallOption) (*TableNameList, error)
	CountTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*TableRowCount, error)
	DeleteByRange(ctx context.Context, in *DeleteByRangeParam, opts ...grpc.CallOption) (*Status, error)
	Cmd(ctx context.Context, in *Command, opts ...grpc.CallOption) (*StringReply, error)
}

type milvusServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMilvusServiceClient(cc grpc.ClientConnInterface) MilvusServiceClient {
	return &milvusServiceClient{cc}
}

func (c *milvusServiceClient) CreateTable(ctx context.Context, in *TableSchema, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/CreateTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) HasTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*BoolReply, error) {
	out := new(BoolReply)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/HasTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) DropTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/DropTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) CreateIndex(ctx context.Context, in *IndexParam, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/CreateIndex", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) DescribeIndex(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*IndexParam, error) {
	out := new(IndexParam)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/DescribeIndex", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) DropIndex(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/DropIndex", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) PreloadTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/PreloadTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) Insert(ctx context.Context, in *InsertParam, opts ...grpc.CallOption) (*VectorIds, error) {
	out := new(VectorIds)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/Insert", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) Search(ctx context.Context, in *SearchParam, opts ...grpc.CallOption) (*TopKQueryResultList, error) {
	out := new(TopKQueryResultList)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/Search", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) SearchInFiles(ctx context.Context, in *SearchInFilesParam, opts ...grpc.CallOption) (*TopKQueryResultList, error) {
	out := new(TopKQueryResultList)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/SearchInFiles", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) DescribeTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*TableSchema, error) {
	out := new(TableSchema)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/DescribeTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) ShowTables(ctx context.Context, in *Command, opts ...grpc.CallOption) (*TableNameList, error) {
	out := new(TableNameList)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/ShowTables", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) CountTable(ctx context.Context, in *TableName, opts ...grpc.CallOption) (*TableRowCount, error) {
	out := new(TableRowCount)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/CountTable", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) DeleteByRange(ctx context.Context, in *DeleteByRangeParam, opts ...grpc.CallOption) (*Status, error) {
	out := new(Status)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/DeleteByRange", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *milvusServiceClient) Cmd(ctx context.Context, in *Command, opts ...grpc.CallOption) (*StringReply, error) {
	out := new(StringReply)
	err := c.cc.Invoke(ctx, "/milvus.grpc.MilvusService/Cmd", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Server API

type MilvusServiceServer interface {
	CreateTable(context.Context, *TableSchema) (*Status, error)
	HasTable(context.Context, *TableName) (*BoolReply, error)
	DropTable(context.Context, *TableName) (*Status, error)
	CreateIndex(context.Context, *IndexParam) (*Status, error)
	DescribeIndex(context.Context, *TableName) (*IndexParam, error)
	DropIndex(context.Context, *TableName) (*Status, error)
	PreloadTable(context.Context, *TableName) (*Status, error)
	Insert(context.Context, *InsertParam) (*VectorIds, error)
	Search(context.Context, *SearchParam) (*TopKQueryResultList, error)
	SearchInFiles(context.Context, *SearchInFilesParam) (*TopKQueryResultList, error)
	DescribeTable(context.Context, *TableName) (*TableSchema, error)
	ShowTables(context.Context, *Command) (*TableNameList, error)
	CountTable(context.Context, *TableName) (*TableRowCount, error)
	DeleteByRange(context.Context, *DeleteByRangeParam) (*Status, error)
	Cmd(context.Context, *Command) (*StringReply, error)
}

// UnimplementedMilvusServiceServer can be embedded for forward compatibility.
type UnimplementedMilvusServiceServer struct{}

func (*UnimplementedMilvusServiceServer) CreateTable(context.Context, *TableSchema) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateTable not implemented")
}

func (*UnimplementedMilvusServiceServer) HasTable(context.Context, *TableName) (*BoolReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method HasTable not implemented")
}

func (*UnimplementedMilvusServiceServer) DropTable(context.Context, *TableName) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DropTable not implemented")
}

func (*UnimplementedMilvusServiceServer) CreateIndex(context.Context, *IndexParam) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateIndex not implemented")
}

func (*UnimplementedMilvusServiceServer) DescribeIndex(context.Context, *TableName) (*IndexParam, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DescribeIndex not implemented")
}

func (*UnimplementedMilvusServiceServer) DropIndex(context.Context, *TableName) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DropIndex not implemented")
}

func (*UnimplementedMilvusServiceServer) PreloadTable(context.Context, *TableName) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreloadTable not implemented")
}

func (*UnimplementedMilvusServiceServer) Insert(context.Context, *InsertParam) (*VectorIds, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Insert not implemented")
}

func (*UnimplementedMilvusServiceServer) Search(context.Context, *SearchParam) (*TopKQueryResultList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Search not implemented")
}

func (*UnimplementedMilvusServiceServer) SearchInFiles(context.Context, *SearchInFilesParam) (*TopKQueryResultList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchInFiles not implemented")
}

func (*UnimplementedMilvusServiceServer) DescribeTable(context.Context, *TableName) (*TableSchema, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DescribeTable not implemented")
}

func (*UnimplementedMilvusServiceServer) ShowTables(context.Context, *Command) (*TableNameList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ShowTables not implemented")
}

func (*UnimplementedMilvusServiceServer) CountTable(context.Context, *TableName) (*TableRowCount, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CountTable not implemented")
}

func (*UnimplementedMilvusServiceServer) DeleteByRange(context.Context, *DeleteByRangeParam) (*Status, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteByRange not implemented")
}

func (*UnimplementedMilvusServiceServer) Cmd(context.Context, *Command) (*StringReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Cmd not implemented")
}

func RegisterMilvusServiceServer(s *grpc.Server, srv MilvusServiceServer) {
	s.RegisterService(&_MilvusService_serviceDesc, srv)
}

func _MilvusService_CreateTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableSchema)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).CreateTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/CreateTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).CreateTable(ctx, req.(*TableSchema))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_HasTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).HasTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/HasTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).HasTable(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_DropTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).DropTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/DropTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).DropTable(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_CreateIndex_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IndexParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).CreateIndex(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/CreateIndex",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).CreateIndex(ctx, req.(*IndexParam))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_DescribeIndex_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).DescribeIndex(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/DescribeIndex",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).DescribeIndex(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_DropIndex_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).DropIndex(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/DropIndex",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).DropIndex(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_PreloadTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).PreloadTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/PreloadTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).PreloadTable(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_Insert_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InsertParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).Insert(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/Insert",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).Insert(ctx, req.(*InsertParam))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_Search_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).Search(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/Search",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).Search(ctx, req.(*SearchParam))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_SearchInFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchInFilesParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).SearchInFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/SearchInFiles",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).SearchInFiles(ctx, req.(*SearchInFilesParam))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_DescribeTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).DescribeTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/DescribeTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).DescribeTable(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_ShowTables_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Command)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).ShowTables(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/ShowTables",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).ShowTables(ctx, req.(*Command))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_CountTable_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TableName)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).CountTable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/CountTable",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).CountTable(ctx, req.(*TableName))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_DeleteByRange_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteByRangeParam)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).DeleteByRange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/DeleteByRange",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).DeleteByRange(ctx, req.(*DeleteByRangeParam))
	}
	return interceptor(ctx, in, info, handler)
}

func _MilvusService_Cmd_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(Command)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MilvusServiceServer).Cmd(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/milvus.grpc.MilvusService/Cmd",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MilvusServiceServer).Cmd(ctx, req.(*Command))
	}
	return interceptor(ctx, in, info, handler)
}

var _MilvusService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "milvus.grpc.MilvusService",
	HandlerType: (*MilvusServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTable",
			Handler:    _MilvusService_CreateTable_Handler,
		},
		{
			MethodName: "HasTable",
			Handler:    _MilvusService_HasTable_Handler,
		},
		{
			MethodName: "DropTable",
			Handler:    _MilvusService_DropTable_Handler,
		},
		{
			MethodName: "CreateIndex",
			Handler:    _MilvusService_CreateIndex_Handler,
		},
		{
			MethodName: "DescribeIndex",
			Handler:    _MilvusService_DescribeIndex_Handler,
		},
		{
			MethodName: "DropIndex",
			Handler:    _MilvusService_DropIndex_Handler,
		},
		{
			MethodName: "PreloadTable",
			Handler:    _MilvusService_PreloadTable_Handler,
		},
		{
			MethodName: "Insert",
			Handler:    _MilvusService_Insert_Handler,
		},
		{
			MethodName: "Search",
			Handler:    _MilvusService_Search_Handler,
		},
		{
			MethodName: "SearchInFiles",
			Handler:    _MilvusService_SearchInFiles_Handler,
		},
		{
			MethodName: "DescribeTable",
			Handler:    _MilvusService_DescribeTable_Handler,
		},
		{
			MethodName: "ShowTables",
			Handler:    _MilvusService_ShowTables_Handler,
		},
		{
			MethodName: "CountTable",
			Handler:    _MilvusService_CountTable_Handler,
		},
		{
			MethodName: "DeleteByRange",
			Handler:    _MilvusService_DeleteByRange_Handler,
		},
		{
			MethodName: "Cmd",
			Handler:    _MilvusService_Cmd_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "milvus.proto",
}

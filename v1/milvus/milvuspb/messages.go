package milvuspb

import (
	"fmt"
)

// Status carries the outcome the server attaches to every reply.
type Status struct {
	ErrorCode int32  `protobuf:"varint,1,opt,name=error_code,json=errorCode,proto3" json:"error_code,omitempty"`
	Reason    string `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
}

func (m *Status) Reset()         { *m = Status{} }
func (m *Status) String() string { return fmt.Sprintf("%+v", *m) }
func (*Status) ProtoMessage()    {}

type TableName struct {
	TableName string `protobuf:"bytes,1,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
}

func (m *TableName) Reset()         { *m = TableName{} }
func (m *TableName) String() string { return fmt.Sprintf("%+v", *m) }
func (*TableName) ProtoMessage()    {}

// TableSchema doubles as the CreateTable request (status unset) and the
// DescribeTable reply (status set by the server).
type TableSchema struct {
	Status        *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	TableName     string  `protobuf:"bytes,2,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
	Dimension     int64   `protobuf:"varint,3,opt,name=dimension,proto3" json:"dimension,omitempty"`
	IndexFileSize int64   `protobuf:"varint,4,opt,name=index_file_size,json=indexFileSize,proto3" json:"index_file_size,omitempty"`
	MetricType    int32   `protobuf:"varint,5,opt,name=metric_type,json=metricType,proto3" json:"metric_type,omitempty"`
}

func (m *TableSchema) Reset()         { *m = TableSchema{} }
func (m *TableSchema) String() string { return fmt.Sprintf("%+v", *m) }
func (*TableSchema) ProtoMessage()    {}

type BoolReply struct {
	Status    *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	BoolReply bool    `protobuf:"varint,2,opt,name=bool_reply,json=boolReply,proto3" json:"bool_reply,omitempty"`
}

func (m *BoolReply) Reset()         { *m = BoolReply{} }
func (m *BoolReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*BoolReply) ProtoMessage()    {}

type TableRowCount struct {
	Status        *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	TableRowCount int64   `protobuf:"varint,2,opt,name=table_row_count,json=tableRowCount,proto3" json:"table_row_count,omitempty"`
}

func (m *TableRowCount) Reset()         { *m = TableRowCount{} }
func (m *TableRowCount) String() string { return fmt.Sprintf("%+v", *m) }
func (*TableRowCount) ProtoMessage()    {}

type Command struct {
	Cmd string `protobuf:"bytes,1,opt,name=cmd,proto3" json:"cmd,omitempty"`
}

func (m *Command) Reset()         { *m = Command{} }
func (m *Command) String() string { return fmt.Sprintf("%+v", *m) }
func (*Command) ProtoMessage()    {}

type StringReply struct {
	Status      *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	StringReply string  `protobuf:"bytes,2,opt,name=string_reply,json=stringReply,proto3" json:"string_reply,omitempty"`
}

func (m *StringReply) Reset()         { *m = StringReply{} }
func (m *StringReply) String() string { return fmt.Sprintf("%+v", *m) }
func (*StringReply) ProtoMessage()    {}

type TableNameList struct {
	Status     *Status  `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	TableNames []string `protobuf:"bytes,2,rep,name=table_names,json=tableNames,proto3" json:"table_names,omitempty"`
}

func (m *TableNameList) Reset()         { *m = TableNameList{} }
func (m *TableNameList) String() string { return fmt.Sprintf("%+v", *m) }
func (*TableNameList) ProtoMessage()    {}

// RowRecord is a single dense vector.
type RowRecord struct {
	VectorData []float32 `protobuf:"fixed32,1,rep,packed,name=vector_data,json=vectorData,proto3" json:"vector_data,omitempty"`
}

func (m *RowRecord) Reset()         { *m = RowRecord{} }
func (m *RowRecord) String() string { return fmt.Sprintf("%+v", *m) }
func (*RowRecord) ProtoMessage()    {}

type InsertParam struct {
	TableName      string       `protobuf:"bytes,1,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
	RowRecordArray []*RowRecord `protobuf:"bytes,2,rep,name=row_record_array,json=rowRecordArray,proto3" json:"row_record_array,omitempty"`
	RowIdArray     []int64      `protobuf:"varint,3,rep,packed,name=row_id_array,json=rowIdArray,proto3" json:"row_id_array,omitempty"`
}

func (m *InsertParam) Reset()         { *m = InsertParam{} }
func (m *InsertParam) String() string { return fmt.Sprintf("%+v", *m) }
func (*InsertParam) ProtoMessage()    {}

type VectorIds struct {
	Status        *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	VectorIdArray []int64 `protobuf:"varint,2,rep,packed,name=vector_id_array,json=vectorIdArray,proto3" json:"vector_id_array,omitempty"`
}

func (m *VectorIds) Reset()         { *m = VectorIds{} }
func (m *VectorIds) String() string { return fmt.Sprintf("%+v", *m) }
func (*VectorIds) ProtoMessage()    {}

// Range bounds a date interval; both values use the yyyy-MM-dd form.
type Range struct {
	StartValue string `protobuf:"bytes,1,opt,name=start_value,json=startValue,proto3" json:"start_value,omitempty"`
	EndValue   string `protobuf:"bytes,2,opt,name=end_value,json=endValue,proto3" json:"end_value,omitempty"`
}

func (m *Range) Reset()         { *m = Range{} }
func (m *Range) String() string { return fmt.Sprintf("%+v", *m) }
func (*Range) ProtoMessage()    {}

type SearchParam struct {
	TableName        string       `protobuf:"bytes,1,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
	QueryRecordArray []*RowRecord `protobuf:"bytes,2,rep,name=query_record_array,json=queryRecordArray,proto3" json:"query_record_array,omitempty"`
	QueryRangeArray  []*Range     `protobuf:"bytes,3,rep,name=query_range_array,json=queryRangeArray,proto3" json:"query_range_array,omitempty"`
	Topk             int64        `protobuf:"varint,4,opt,name=topk,proto3" json:"topk,omitempty"`
	Nprobe           int64        `protobuf:"varint,5,opt,name=nprobe,proto3" json:"nprobe,omitempty"`
}

func (m *SearchParam) Reset()         { *m = SearchParam{} }
func (m *SearchParam) String() string { return fmt.Sprintf("%+v", *m) }
func (*SearchParam) ProtoMessage()    {}

type SearchInFilesParam struct {
	FileIdArray []string     `protobuf:"bytes,1,rep,name=file_id_array,json=fileIdArray,proto3" json:"file_id_array,omitempty"`
	SearchParam *SearchParam `protobuf:"bytes,2,opt,name=search_param,json=searchParam,proto3" json:"search_param,omitempty"`
}

func (m *SearchInFilesParam) Reset()         { *m = SearchInFilesParam{} }
func (m *SearchInFilesParam) String() string { return fmt.Sprintf("%+v", *m) }
func (*SearchInFilesParam) ProtoMessage()    {}

type QueryResult struct {
	Id       int64   `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Distance float64 `protobuf:"fixed64,2,opt,name=distance,proto3" json:"distance,omitempty"`
}

func (m *QueryResult) Reset()         { *m = QueryResult{} }
func (m *QueryResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryResult) ProtoMessage()    {}

// TopKQueryResult is the ranked result list for one query vector.
type TopKQueryResult struct {
	QueryResultArrays []*QueryResult `protobuf:"bytes,1,rep,name=query_result_arrays,json=queryResultArrays,proto3" json:"query_result_arrays,omitempty"`
}

func (m *TopKQueryResult) Reset()         { *m = TopKQueryResult{} }
func (m *TopKQueryResult) String() string { return fmt.Sprintf("%+v", *m) }
func (*TopKQueryResult) ProtoMessage()    {}

type TopKQueryResultList struct {
	Status          *Status            `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	TopkQueryResult []*TopKQueryResult `protobuf:"bytes,2,rep,name=topk_query_result,json=topkQueryResult,proto3" json:"topk_query_result,omitempty"`
}

func (m *TopKQueryResultList) Reset()         { *m = TopKQueryResultList{} }
func (m *TopKQueryResultList) String() string { return fmt.Sprintf("%+v", *m) }
func (*TopKQueryResultList) ProtoMessage()    {}

type Index struct {
	IndexType int32 `protobuf:"varint,1,opt,name=index_type,json=indexType,proto3" json:"index_type,omitempty"`
	Nlist     int64 `protobuf:"varint,2,opt,name=nlist,proto3" json:"nlist,omitempty"`
}

func (m *Index) Reset()         { *m = Index{} }
func (m *Index) String() string { return fmt.Sprintf("%+v", *m) }
func (*Index) ProtoMessage()    {}

// IndexParam doubles as the CreateIndex request (status unset) and the
// DescribeIndex reply.
type IndexParam struct {
	Status    *Status `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	TableName string  `protobuf:"bytes,2,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
	Index     *Index  `protobuf:"bytes,3,opt,name=index,proto3" json:"index,omitempty"`
}

func (m *IndexParam) Reset()         { *m = IndexParam{} }
func (m *IndexParam) String() string { return fmt.Sprintf("%+v", *m) }
func (*IndexParam) ProtoMessage()    {}

type DeleteByRangeParam struct {
	Range     *Range `protobuf:"bytes,1,opt,name=range,proto3" json:"range,omitempty"`
	TableName string `protobuf:"bytes,2,opt,name=table_name,json=tableName,proto3" json:"table_name,omitempty"`
}

func (m *DeleteByRangeParam) Reset()         { *m = DeleteByRangeParam{} }
func (m *DeleteByRangeParam) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteByRangeParam) ProtoMessage()    {}

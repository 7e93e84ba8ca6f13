package milvus

import (
	"github.com/Aleph-Alpha/milvus-go/v1/milvus/milvuspb"
)

// dateLayout is the calendar date form the protocol uses for range bounds.
// Time-of-day is not representable on the wire.
const dateLayout = "2006-01-02"

// ── Request Conversion ───────────────────────────────────────────────────────

// buildTableSchema converts a domain schema to its wire form, filling in the
// request defaults for fields left zero.
func buildTableSchema(schema TableSchema) *milvuspb.TableSchema {
	indexFileSize := schema.IndexFileSize
	if indexFileSize == 0 {
		indexFileSize = DefaultIndexFileSize
	}

	metricType := schema.MetricType
	if metricType == 0 {
		metricType = MetricL2
	}

	return &milvuspb.TableSchema{
		TableName:     schema.TableName,
		Dimension:     schema.Dimension,
		IndexFileSize: indexFileSize,
		MetricType:    int32(metricType),
	}
}

// buildRowRecords converts vector rows to wire records, preserving row order.
func buildRowRecords(vectors [][]float32) []*milvuspb.RowRecord {
	records := make([]*milvuspb.RowRecord, len(vectors))
	for i, vector := range vectors {
		records[i] = &milvuspb.RowRecord{VectorData: vector}
	}
	return records
}

// buildRanges serializes each date range bound in yyyy-MM-dd form.
func buildRanges(ranges []Range) []*milvuspb.Range {
	if len(ranges) == 0 {
		return nil
	}

	converted := make([]*milvuspb.Range, len(ranges))
	for i, r := range ranges {
		converted[i] = &milvuspb.Range{
			StartValue: r.Start.Format(dateLayout),
			EndValue:   r.End.Format(dateLayout),
		}
	}
	return converted
}

// buildInsertParam converts an insert request to its wire form.
func buildInsertParam(param InsertParam) *milvuspb.InsertParam {
	return &milvuspb.InsertParam{
		TableName:      param.TableName,
		RowRecordArray: buildRowRecords(param.Vectors),
		RowIdArray:     param.IDs,
	}
}

// buildSearchParam converts a search request to its wire form. Query vectors
// keep the caller's order, so result lists can be matched back by position.
func buildSearchParam(param SearchParam) *milvuspb.SearchParam {
	return &milvuspb.SearchParam{
		TableName:        param.TableName,
		QueryRecordArray: buildRowRecords(param.QueryVectors),
		QueryRangeArray:  buildRanges(param.Ranges),
		Topk:             param.TopK,
		Nprobe:           param.NProbe,
	}
}

// buildSearchInFilesParam wraps a search request together with the file scope.
func buildSearchInFilesParam(param SearchInFilesParam) *milvuspb.SearchInFilesParam {
	return &milvuspb.SearchInFilesParam{
		FileIdArray: param.FileIDs,
		SearchParam: buildSearchParam(param.SearchParam),
	}
}

// buildIndexParam converts an index request to its wire form, filling in the
// request defaults for fields left zero.
func buildIndexParam(param IndexParam) *milvuspb.IndexParam {
	indexType := param.Index.Type
	if indexType == IndexInvalid {
		indexType = IndexFlat
	}

	nList := param.Index.NList
	if nList == 0 {
		nList = DefaultNList
	}

	return &milvuspb.IndexParam{
		TableName: param.TableName,
		Index: &milvuspb.Index{
			IndexType: int32(indexType),
			Nlist:     nList,
		},
	}
}

// buildDeleteByRangeParam converts a date-range delete to its wire form.
func buildDeleteByRangeParam(tableName string, r Range) *milvuspb.DeleteByRangeParam {
	return &milvuspb.DeleteByRangeParam{
		TableName: tableName,
		Range: &milvuspb.Range{
			StartValue: r.Start.Format(dateLayout),
			EndValue:   r.End.Format(dateLayout),
		},
	}
}

// ── Result Conversion ────────────────────────────────────────────────────────

// parseTableSchema converts a DescribeTable reply to its domain form.
func parseTableSchema(reply *milvuspb.TableSchema) TableSchema {
	if reply == nil {
		return TableSchema{}
	}

	return TableSchema{
		TableName:     reply.TableName,
		Dimension:     reply.Dimension,
		IndexFileSize: reply.IndexFileSize,
		MetricType:    MetricType(reply.MetricType),
	}
}

// parseIndex converts a DescribeIndex reply to its domain form.
func parseIndex(reply *milvuspb.IndexParam) Index {
	if reply == nil || reply.Index == nil {
		return Index{}
	}

	return Index{
		Type:  IndexType(reply.Index.IndexType),
		NList: reply.Index.Nlist,
	}
}

// parseSearchResults converts a search reply into one ranked result list per
// query vector. Both the query order and the ranking order within each list
// are preserved exactly as the server returned them.
func parseSearchResults(reply *milvuspb.TopKQueryResultList) [][]QueryResult {
	if reply == nil || len(reply.TopkQueryResult) == 0 {
		return [][]QueryResult{}
	}

	results := make([][]QueryResult, len(reply.TopkQueryResult))
	for i, topK := range reply.TopkQueryResult {
		if topK == nil {
			results[i] = []QueryResult{}
			continue
		}

		ranked := make([]QueryResult, 0, len(topK.QueryResultArrays))
		for _, match := range topK.QueryResultArrays {
			if match == nil {
				continue
			}
			ranked = append(ranked, QueryResult{
				ID:       match.Id,
				Distance: match.Distance,
			})
		}
		results[i] = ranked
	}
	return results
}

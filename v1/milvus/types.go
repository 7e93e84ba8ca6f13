package milvus

import "time"

// MetricType selects the distance metric a table uses for similarity search.
type MetricType int32

const (
	// MetricL2 is squared Euclidean distance (lower = more similar).
	MetricL2 MetricType = 1

	// MetricIP is inner product (higher = more similar).
	MetricIP MetricType = 2
)

// String returns the symbolic name of the metric type.
func (m MetricType) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricIP:
		return "IP"
	default:
		return "InvalidMetricType"
	}
}

// IndexType selects the index structure built over a table's vectors.
type IndexType int32

const (
	// IndexInvalid is the zero value and never valid in a request.
	IndexInvalid IndexType = 0

	// IndexFlat is exhaustive search without an index structure.
	IndexFlat IndexType = 1

	// IndexIVFFlat is an inverted-file index over raw vectors.
	IndexIVFFlat IndexType = 2

	// IndexIVFSQ8 is an inverted-file index over scalar-quantized vectors.
	IndexIVFSQ8 IndexType = 3
)

// String returns the symbolic name of the index type.
func (t IndexType) String() string {
	switch t {
	case IndexFlat:
		return "FLAT"
	case IndexIVFFlat:
		return "IVFLAT"
	case IndexIVFSQ8:
		return "IVF_SQ8"
	default:
		return "INVALID"
	}
}

// Request defaults applied when the corresponding field is left zero.
const (
	// DefaultIndexFileSize is the index file size (in MB) used when a
	// TableSchema does not specify one.
	DefaultIndexFileSize int64 = 1024

	// DefaultNList is the cluster count used when an Index does not
	// specify one.
	DefaultNList int64 = 16384
)

// TableSchema describes a table holding fixed-dimension float vectors.
type TableSchema struct {
	// TableName is the unique identifier of the table
	TableName string `json:"tableName"`

	// Dimension is the vector dimension all rows must have
	Dimension int64 `json:"dimension"`

	// IndexFileSize is the data file size (in MB) that triggers index
	// building. Zero falls back to DefaultIndexFileSize.
	IndexFileSize int64 `json:"indexFileSize"`

	// MetricType is the distance metric used for search. Zero falls back
	// to MetricL2.
	MetricType MetricType `json:"metricType"`
}

// Index describes the index structure to build over a table.
type Index struct {
	// Type is the index structure. Zero (IndexInvalid) falls back to
	// IndexFlat.
	Type IndexType `json:"indexType"`

	// NList is the number of clusters for inverted-file indexes. Zero falls
	// back to DefaultNList.
	NList int64 `json:"nList"`
}

// IndexParam names the table an index is created on.
type IndexParam struct {
	// TableName is the table to index
	TableName string `json:"tableName"`

	// Index is the index description
	Index Index `json:"index"`
}

// InsertParam carries vector rows to insert into a table.
type InsertParam struct {
	// TableName is the table receiving the rows
	TableName string `json:"tableName"`

	// Vectors are the rows to insert, one embedding per row, in order
	Vectors [][]float32 `json:"vectors"`

	// IDs optionally assigns identifiers to the rows. When empty the server
	// assigns them. When set, it must have one entry per row.
	IDs []int64 `json:"ids,omitempty"`
}

// Range restricts a search to rows inserted inside a calendar date window.
// Only the calendar date of the bounds is sent to the server; time-of-day is
// not represented in the protocol.
type Range struct {
	// Start is the inclusive lower bound
	Start time.Time `json:"start"`

	// End is the upper bound
	End time.Time `json:"end"`
}

// SearchParam describes a similarity search over one table.
type SearchParam struct {
	// TableName is the table to search in
	TableName string `json:"tableName"`

	// QueryVectors are the query embeddings. The reply carries one ranked
	// result list per query vector, in the same order.
	QueryVectors [][]float32 `json:"queryVectors"`

	// Ranges optionally restrict the search by insertion date
	Ranges []Range `json:"ranges,omitempty"`

	// TopK is the maximum number of results per query vector
	TopK int64 `json:"topK"`

	// NProbe is the number of index clusters to probe
	NProbe int64 `json:"nProbe"`
}

// SearchInFilesParam restricts a search to an explicit set of data files.
type SearchInFilesParam struct {
	// FileIDs are the identifiers of the data files to search, in order
	FileIDs []string `json:"fileIds"`

	// SearchParam is the search request applied inside those files
	SearchParam
}

// QueryResult is one ranked match of a similarity search.
type QueryResult struct {
	// ID is the identifier of the matched row
	ID int64 `json:"id"`

	// Distance is the metric value between query and match
	Distance float64 `json:"distance"`
}

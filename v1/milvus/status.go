package milvus

import "fmt"

// StatusCode identifies the outcome of an operation.
//
// Non-negative codes are produced by the Milvus server and passed through
// verbatim. Negative codes are produced on the client side and never travel
// over the wire.
type StatusCode int32

// Server side status codes. The numeric values are part of the wire protocol
// and must not be changed.
const (
	StatusSuccess             StatusCode = 0
	StatusUnexpectedError     StatusCode = 1
	StatusConnectFailed       StatusCode = 2
	StatusPermissionDenied    StatusCode = 3
	StatusTableNotExists      StatusCode = 4
	StatusIllegalArgument     StatusCode = 5
	StatusIllegalRange        StatusCode = 6
	StatusIllegalDimension    StatusCode = 7
	StatusIllegalIndexType    StatusCode = 8
	StatusIllegalTableName    StatusCode = 9
	StatusIllegalTopK         StatusCode = 10
	StatusIllegalRowRecord    StatusCode = 11
	StatusIllegalVectorID     StatusCode = 12
	StatusIllegalSearchResult StatusCode = 13
	StatusIllegalNProbe       StatusCode = 14
	StatusIllegalNList        StatusCode = 15
	StatusIllegalMetricType   StatusCode = 16
	StatusMetaFailed          StatusCode = 17
	StatusCacheFailed         StatusCode = 18
	StatusCannotCreateFolder  StatusCode = 19
	StatusCannotCreateFile    StatusCode = 20
	StatusCannotDeleteFolder  StatusCode = 21
	StatusCannotDeleteFile    StatusCode = 22
	StatusBuildIndexError     StatusCode = 23
	StatusOutOfMemory         StatusCode = 24
)

// Client side status codes.
const (
	// StatusRPCError indicates the call failed at the transport level
	// (channel error, deadline, disconnection during the call).
	StatusRPCError StatusCode = -1

	// StatusClientNotConnected indicates the operation was rejected before
	// dispatch because the client holds no ready connection.
	StatusClientNotConnected StatusCode = -2

	// StatusUnknown indicates an outcome that could not be classified.
	StatusUnknown StatusCode = -3
)

var statusCodeNames = map[StatusCode]string{
	StatusSuccess:             "Success",
	StatusUnexpectedError:     "UnexpectedError",
	StatusConnectFailed:       "ConnectFailed",
	StatusPermissionDenied:    "PermissionDenied",
	StatusTableNotExists:      "TableNotExists",
	StatusIllegalArgument:     "IllegalArgument",
	StatusIllegalRange:        "IllegalRange",
	StatusIllegalDimension:    "IllegalDimension",
	StatusIllegalIndexType:    "IllegalIndexType",
	StatusIllegalTableName:    "IllegalTableName",
	StatusIllegalTopK:         "IllegalTopK",
	StatusIllegalRowRecord:    "IllegalRowRecord",
	StatusIllegalVectorID:     "IllegalVectorID",
	StatusIllegalSearchResult: "IllegalSearchResult",
	StatusIllegalNProbe:       "IllegalNProbe",
	StatusIllegalNList:        "IllegalNList",
	StatusIllegalMetricType:   "IllegalMetricType",
	StatusMetaFailed:          "MetaFailed",
	StatusCacheFailed:         "CacheFailed",
	StatusCannotCreateFolder:  "CannotCreateFolder",
	StatusCannotCreateFile:    "CannotCreateFile",
	StatusCannotDeleteFolder:  "CannotDeleteFolder",
	StatusCannotDeleteFile:    "CannotDeleteFile",
	StatusBuildIndexError:     "BuildIndexError",
	StatusOutOfMemory:         "OutOfMemory",
	StatusRPCError:            "RPCError",
	StatusClientNotConnected:  "ClientNotConnected",
	StatusUnknown:             "Unknown",
}

// String returns the symbolic name of the status code. Codes the client does
// not recognize keep their numeric value, so server responses are never
// collapsed into a generic name.
func (c StatusCode) String() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("StatusCode(%d)", int32(c))
}

// OK reports whether the code represents a successful outcome.
func (c StatusCode) OK() bool {
	return c == StatusSuccess
}

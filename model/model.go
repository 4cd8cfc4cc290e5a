package model

import (
	"fmt"
	"strconv"
)

// ProductID as assigned by the backend.
type ProductID int64

// String satisfies [fmt.Stringer].
func (i ProductID) String() string {
	return strconv.FormatInt(int64(i), 10)
}

var _ fmt.Stringer = ProductID(0)

// ParseProductID from a path segment.
func ParseProductID(v string) (ProductID, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, err
	}
	return ProductID(id), nil
}

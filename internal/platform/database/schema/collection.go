package schema

// DocumentTable represents a collection table holding one JSON document per row
type DocumentTable struct {
	Table     string
	ID        string
	Body      string
	CreatedAt string
}

// Document returns the schema definition for the named collection table
func Document(collection string) DocumentTable {
	return DocumentTable{
		Table:     "catalog." + collection,
		ID:        "id",
		Body:      "body",
		CreatedAt: "createdat",
	}
}

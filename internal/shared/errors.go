package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// repository errors
const ErrSchemaOutdated = Error("database schema is outdated")

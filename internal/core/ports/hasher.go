package ports

// Hasher defines the interface for computing artifact digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the hex digest of the file content at path.
	HashFile(path string) (string, error)
}

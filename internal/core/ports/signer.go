package ports

// FileSigner computes content-derived signatures used for cache invalidation.
//
//go:generate go run go.uber.org/mock/mockgen -source=signer.go -destination=mocks/mock_signer.go -package=mocks
type FileSigner interface {
	// SignFile computes a deterministic signature over the byte content of
	// the file at path.
	SignFile(path string) (string, error)

	// CombineSignatures aggregates unit signatures into a single signature
	// that is independent of input order.
	CombineSignatures(signatures []string) string
}

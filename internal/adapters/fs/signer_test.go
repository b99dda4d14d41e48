package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/fanout/internal/adapters/fs"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestSigner_SignFile_Deterministic(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "Foo.kt", "class Foo")

	signer := fs.NewSigner()

	sig1, err := signer.SignFile(path)
	if err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}
	sig2, err := signer.SignFile(path)
	if err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}

	if sig1 != sig2 {
		t.Errorf("expected identical signatures, got %s and %s", sig1, sig2)
	}
	if len(sig1) != 16 {
		t.Errorf("expected 16 hex characters, got %q", sig1)
	}
}

func TestSigner_SignFile_ChangesWithContent(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeFile(t, tmpDir, "Foo.kt", "class Foo")

	signer := fs.NewSigner()
	before, err := signer.SignFile(path)
	if err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}

	writeFile(t, tmpDir, "Foo.kt", "class Foo { val x = 1 }")
	after, err := signer.SignFile(path)
	if err != nil {
		t.Fatalf("SignFile failed: %v", err)
	}

	if before == after {
		t.Error("expected signature to change with content")
	}
}

func TestSigner_SignFile_Missing(t *testing.T) {
	signer := fs.NewSigner()
	if _, err := signer.SignFile(filepath.Join(t.TempDir(), "absent.kt")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestSigner_CombineSignatures_OrderIndependent(t *testing.T) {
	signer := fs.NewSigner()

	a := signer.CombineSignatures([]string{"aaa", "bbb", "ccc"})
	b := signer.CombineSignatures([]string{"ccc", "aaa", "bbb"})
	if a != b {
		t.Errorf("expected order-independent aggregate, got %s and %s", a, b)
	}

	c := signer.CombineSignatures([]string{"aaa", "bbb"})
	if a == c {
		t.Error("expected aggregate to depend on its members")
	}
}

package preflight_test

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"wasmcrypto/app"
	"wasmcrypto/crypto/pqc/dilithium"
	"wasmcrypto/crypto/pqc/dilithium/vectors"
	"wasmcrypto/crypto/pqc/ext"
)

var longHexSequence = regexp.MustCompile(`[0-9a-fA-F]{64,}`)

func TestPQCBackendApproved(t *testing.T) {
	dilithium.Default()
	name := dilithium.ActiveBackend()
	switch name {
	case "dilithium2-circl":
	default:
		t.Fatalf("unapproved PQC backend linked: %s", name)
	}
}

func TestWireLayoutConstants(t *testing.T) {
	require.Equal(t, 32, dilithium.SeedSize)
	require.Equal(t, 2528, ext.SecretKeyLength)
	require.Equal(t, 1312, ext.PublicKeyLength)
	require.Equal(t, 3840, ext.KeypairLength)
	require.Equal(t, 2420, ext.SignatureLength)
}

func TestKnownVectorThroughBoundary(t *testing.T) {
	keypair := ext.ExtDilithiumFromSeed(vectors.KnownSeed())
	require.Len(t, keypair, ext.KeypairLength)
	require.Equal(t, vectors.KnownPublicKey(), keypair[ext.SecretKeyLength:])

	a, err := dilithium.NewAdapter(dilithium.Default())
	require.NoError(t, err)
	kp, err := a.GenerateKeypair(vectors.KnownSeed())
	require.NoError(t, err)
	require.Equal(t, keypair, []byte(kp))
}

func TestBoundaryAndAdapterAgree(t *testing.T) {
	seed := bytes.Repeat([]byte{0x5A}, dilithium.SeedSize)
	msg := []byte("boundary")

	a, err := dilithium.NewAdapter(dilithium.Default())
	require.NoError(t, err)
	sig, err := a.Sign(seed, msg)
	require.NoError(t, err)

	require.Equal(t, []byte(sig), ext.ExtDilithiumSign(nil, seed, msg))
	pk := ext.ExtDilithiumFromSeed(seed)[ext.SecretKeyLength:]
	require.True(t, ext.ExtDilithiumVerify(sig, msg, pk))
}

func TestCrossCallIndependence(t *testing.T) {
	seedA := bytes.Repeat([]byte{0x01}, dilithium.SeedSize)
	seedB := bytes.Repeat([]byte{0x02}, dilithium.SeedSize)
	msg := []byte("no hidden state")

	sigA := ext.ExtDilithiumSign(nil, seedA, msg)
	pkA := ext.ExtDilithiumFromSeed(seedA)[ext.SecretKeyLength:]

	// Interleave unrelated work; the verdict must not move.
	_ = ext.ExtDilithiumFromSeed(seedB)
	_ = ext.ExtDilithiumSign(nil, seedB, []byte("other"))
	require.True(t, ext.ExtDilithiumVerify(sigA, msg, pkA))
	require.Equal(t, sigA, ext.ExtDilithiumSign(nil, seedA, msg))

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = ext.ExtDilithiumSign(nil, seedB, msg)
			}
			results[i] = ext.ExtDilithiumVerify(sigA, msg, pkA)
		}(i)
	}
	wg.Wait()
	for i, ok := range results {
		require.True(t, ok, "goroutine %d", i)
	}
}

func TestPQCNoSensitiveLogs(t *testing.T) {
	var logs bytes.Buffer
	cfg := app.DefaultConfig()
	cfg.LogLevel = "trace"
	cfg.LogFormat = app.LogFormatJSON

	a, err := app.New(cfg, &logs)
	require.NoError(t, err)

	seed := bytes.Repeat([]byte{0xBB}, dilithium.SeedSize)
	kp, err := a.Adapter.GenerateKeypair(seed)
	require.NoError(t, err)
	sig, err := a.Adapter.Sign(seed, []byte("log check"))
	require.NoError(t, err)
	require.True(t, a.Adapter.Verify(sig, []byte("log check"), kp.PublicKey()))

	out := strings.ToLower(logs.String())
	require.NotEmpty(t, out)
	require.NotContains(t, out, "priv")
	require.NotContains(t, out, "seed")
	if longHexSequence.MatchString(out) {
		t.Fatalf("debug log contains long hex payload: %s", out)
	}
}

// The adapter packages must stay free of package-level mutable state; only
// registered errors may be declared with var.
func TestNoProcessWideState(t *testing.T) {
	repoRoot := findRepoRoot(t)
	allowedVar := regexp.MustCompile(`^Err[A-Z]`)

	for _, dir := range []string{"crypto/pqc/dilithium", "crypto/pqc/ext"} {
		walkGoFiles(t, filepath.Join(repoRoot, dir), func(rel string, data []byte) {
			if strings.HasSuffix(rel, "_test.go") || strings.Contains(rel, "/") {
				return
			}
			f, err := parser.ParseFile(token.NewFileSet(), rel, data, 0)
			require.NoError(t, err)
			for _, decl := range f.Decls {
				gd, ok := decl.(*ast.GenDecl)
				if !ok || gd.Tok != token.VAR {
					continue
				}
				for _, spec := range gd.Specs {
					for _, name := range spec.(*ast.ValueSpec).Names {
						if !allowedVar.MatchString(name.Name) {
							t.Fatalf("%s/%s declares package-level var %s", dir, rel, name.Name)
						}
					}
				}
			}
		})
	}
}

func TestNoDebugPrintsInAdapter(t *testing.T) {
	repoRoot := findRepoRoot(t)
	banned := [][]byte{
		[]byte("fmt.Print"),
		[]byte("os.Stdout"),
		[]byte("os.Stderr"),
	}

	walkGoFiles(t, filepath.Join(repoRoot, "crypto"), func(rel string, data []byte) {
		if strings.HasSuffix(rel, "_test.go") {
			return
		}
		for _, needle := range banned {
			if bytes.Contains(data, needle) {
				t.Fatalf("%s found in crypto/%s", needle, rel)
			}
		}
	})
}

func TestNoModuleReplacements(t *testing.T) {
	bz, err := os.ReadFile(filepath.Join(findRepoRoot(t), "go.mod"))
	require.NoError(t, err)
	for _, line := range strings.Split(string(bz), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "replace") {
			t.Fatalf("go.mod must resolve every module from its release: %s", line)
		}
	}
	require.Contains(t, string(bz), "github.com/bytedance/sonic v1.14.0")
}

func findRepoRoot(t *testing.T) string {
	t.Helper()
	_, thisfile, _, _ := runtime.Caller(0)
	dir := filepath.Dir(thisfile)
	return filepath.Clean(filepath.Join(dir, "../.."))
}

func walkGoFiles(t *testing.T, root string, fn func(rel string, data []byte)) {
	t.Helper()
	skip := map[string]bool{
		".git":      true,
		"_examples": true,
		"vendor":    true,
		"testdata":  true,
	}

	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skip[filepath.Base(path)] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		bz, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		fn(filepath.ToSlash(rel), bz)
		return nil
	}); err != nil {
		t.Fatalf("walk go files: %v", err)
	}
}

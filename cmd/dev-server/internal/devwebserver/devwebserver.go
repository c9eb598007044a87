package devwebserver

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
)

const (
	packagePath = "github.com/silbinarywolf/dragonfire/cmd/dev-server/internal/devwebserver"
	gamePackage = "github.com/silbinarywolf/dragonfire/cmd/dragonfire"
)

// Arguments are the settings of the dev server
type Arguments struct {
	Port      string // :8080
	Directory string // .
	Tags      string // ie. "debug"
	Package   string // package of the game to build
}

var (
	arguments    Arguments
	tmpOutputDir = ""

	wasmJSPath    string
	indexHTMLPath string
)

// Serve will serve a build of the game to the web browser, the game is
// rebuilt every time main.wasm is requested.
// This function will block until exit.
func Serve(args []string) {
	flagSet := flag.NewFlagSet("serve", flag.ExitOnError)
	tags := flagSet.String("tags", "", "a list of build tags to consider satisfied during the build")
	port := flagSet.String("port", ":8080", "address to listen on")
	pkg := flagSet.String("package", gamePackage, "package to build to main.wasm")
	if err := flagSet.Parse(args); err != nil {
		log.Fatal(err)
	}

	arguments = Arguments{
		Port:      *port,
		Directory: ".",
		Tags:      *tags,
		Package:   *pkg,
	}

	// Get default resources
	var err error
	wasmJSPath, err = findWasmExecJS(runtime.GOROOT())
	if err != nil {
		log.Fatalf("%+v", err)
	}
	indexHTMLPath, err = getDefaultIndexHTMLPath(arguments.Directory)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	// Start server
	fmt.Printf("Listening on http://localhost%s...\n", arguments.Port)
	http.HandleFunc("/", handle)
	if err := http.ListenAndServe(arguments.Port, nil); err != nil {
		log.Fatal(err)
	}
}

func handle(w http.ResponseWriter, r *http.Request) {
	upath := r.URL.Path[1:]
	fpath := filepath.Base(upath)
	if strings.HasSuffix(r.URL.Path, "/") {
		fpath = "index.html"
	}

	switch fpath {
	case "index.html":
		log.Print("serving index.html: " + indexHTMLPath)
		http.ServeFile(w, r, indexHTMLPath)
	case "wasm_exec.js":
		log.Print("serving wasm_exec.js: " + wasmJSPath)
		http.ServeFile(w, r, wasmJSPath)
	case "main.wasm":
		output, err := ensureTmpOutputDir()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		wasmPath := filepath.Join(output, "main.wasm")
		if out, err := build(wasmPath); err != nil {
			log.Printf("%+v", err)
			http.Error(w, string(out), http.StatusInternalServerError)
			return
		}
		f, err := os.Open(wasmPath)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer f.Close()
		http.ServeContent(w, r, "main.wasm", time.Now(), f)
	default:
		http.NotFound(w, r)
	}
}

// build compiles the game to wasm, returning the compiler output
func build(wasmPath string) ([]byte, error) {
	args := buildArgs(wasmPath, arguments.Tags, arguments.Package)
	log.Print("go ", strings.Join(args, " "))
	cmdBuild := exec.Command(gobin(), args...)
	cmdBuild.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmdBuild.Dir = arguments.Directory
	out, err := cmdBuild.CombinedOutput()
	if err != nil {
		return out, errors.Wrapf(err, "failed to build %s", arguments.Package)
	}
	if len(out) > 0 {
		log.Print(string(out))
	}
	return out, nil
}

func buildArgs(output, tags, pkg string) []string {
	args := []string{"build", "-o", output}
	if tags != "" {
		args = append(args, "-tags", tags)
	}
	return append(args, pkg)
}

func gobin() string {
	return filepath.Join(runtime.GOROOT(), "bin", "go")
}

func ensureTmpOutputDir() (string, error) {
	if tmpOutputDir != "" {
		return tmpOutputDir, nil
	}
	tmp, err := os.MkdirTemp("", "dragonfire-wasm")
	if err != nil {
		return "", errors.Wrap(err, "failed to create output dir")
	}
	tmpOutputDir = tmp
	return tmpOutputDir, nil
}

// findWasmExecJS finds the wasm_exec.js that ships with the Go install.
// It moved from misc/wasm to lib/wasm in Go 1.24.
func findWasmExecJS(goroot string) (string, error) {
	const baseName = "wasm_exec.js"
	candidates := []string{
		filepath.Join(goroot, "lib", "wasm", baseName),
		filepath.Join(goroot, "misc", "wasm", baseName),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.Errorf("unable to find %s in %s", baseName, goroot)
}

var (
	cmdDir string
	cmdErr error
)

func computeCmdSourceDir(gameDir string) (string, error) {
	if cmdDir == "" && cmdErr == nil {
		cmdDir, cmdErr = computeCmdSourceDirUncached(gameDir)
	}
	return cmdDir, cmdErr
}

func computeCmdSourceDirUncached(gameDir string) (string, error) {
	currentDir, err := filepath.Abs(gameDir)
	if err != nil {
		return "", errors.WithStack(err)
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  currentDir,
	}
	pkgs, err := packages.Load(cfg, packagePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to load "+packagePath)
	}
	if len(pkgs) == 0 {
		return "", errors.New("Unable to find package: " + packagePath)
	}
	pkg := pkgs[0]
	if len(pkg.GoFiles) == 0 {
		return "", errors.New("Cannot find *.go files in:" + currentDir)
	}
	return filepath.Dir(pkg.GoFiles[0]), nil
}

func getDefaultIndexHTMLPath(gameDir string) (string, error) {
	const baseName = "index.html"
	// Look for user-override
	if path := filepath.Join(gameDir, "html", baseName); fileExists(path) {
		return path, nil
	}
	// Look for the one next to this package
	dir, err := computeCmdSourceDir(gameDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

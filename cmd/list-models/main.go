package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"

	"github.com/charlespascoe/list-models/pkg/models"
)

var version = "dev"

type Context struct {
	context.Context
	Client *models.Client
	Logger *zap.Logger
	Stdout io.StringWriter
}

type CLI struct {
	APIURL  string        `kong:"name='api-url',env='API_URL',default='http://127.0.0.1:8317',placeholder='URL',help='Base URL of the API, without the /v1/models path.'"`
	APIKey  string        `kong:"name='api-key',env='API_KEY',required,placeholder='KEY',help='Bearer token sent with the request.'"`
	Timeout time.Duration `kong:"env='API_TIMEOUT',default='0s',help='Request timeout. Zero waits indefinitely.'"`
	Verbose bool          `kong:"short='v',help='Log request details to stderr.'"`

	Version kong.VersionFlag `kong:"help='Print the version and exit.'"`

	List ListModelsCmd `kong:"cmd,default='1',help='Fetch and list all available models.'"`
}

func main() {
	var args CLI
	ctx := kong.Parse(
		&args,
		kong.Name("list-models"),
		kong.Description("List the models served by an OpenAI-compatible API."),
		kong.Vars{"version": version},
	)

	logger, err := newLogger(args.Verbose)
	ctx.FatalIfErrorf(err)
	defer logger.Sync()

	c, err := models.New(models.Config{
		URL:       args.APIURL,
		Token:     args.APIKey,
		Timeout:   args.Timeout,
		UserAgent: "list-models/" + version,
		Logger:    logger,
	})
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&Context{
		Context: context.Background(),
		Client:  c,
		Logger:  logger,
		Stdout:  os.Stdout,
	})

	ctx.FatalIfErrorf(err)
}

// newLogger returns a no-op logger unless verbose output was asked for, in which case
// debug logs go to stderr.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	return zap.NewDevelopment()
}

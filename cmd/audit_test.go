package main

import (
	"bytes"
	"context"
	"linkaudit/internal/auditor"
	"linkaudit/pkg/logger"
	"linkaudit/pkg/probe"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	_ = logger.Setup("development", "error")
	os.Exit(m.Run())
}

func writeNotebook(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRunAudit_Text(t *testing.T) {
	dir := t.TempDir()
	dead := writeNotebook(t, dir, "a.ipynb", "see https://gone.example/x) and https://ok.example/\n")
	writeNotebook(t, dir, "b.ipynb", "https://ok.example/\n")

	a := auditor.New(probe.Static(map[string]bool{"https://ok.example/": true}), auditor.Options{})

	t.Run("failing notebook", func(t *testing.T) {
		var out bytes.Buffer
		err := runAudit(context.Background(), &out, a, dir, formatText)
		require.ErrorIs(t, err, errAuditFailed)
		require.True(t, isAuditFailure(err))
		require.Equal(t, dead+":\n- https://gone.example/x is dead\n", out.String())
	})

	t.Run("all alive", func(t *testing.T) {
		clean := t.TempDir()
		writeNotebook(t, clean, "c.ipynb", "https://ok.example/\n")

		var out bytes.Buffer
		require.NoError(t, runAudit(context.Background(), &out, a, clean, formatText))
		require.Equal(t, "1 notebooks audited, no dead links\n", out.String())
	})

	t.Run("missing root", func(t *testing.T) {
		var out bytes.Buffer
		err := runAudit(context.Background(), &out, a, filepath.Join(dir, "nope"), formatText)
		require.ErrorIs(t, err, errAuditFailed)
		require.NotEmpty(t, out.String())
	})
}

func TestRunAudit_JSON(t *testing.T) {
	dir := t.TempDir()
	writeNotebook(t, dir, "a.ipynb", "https://gone.example/x https://gone.example/x\n")

	a := auditor.New(probe.Static(nil), auditor.Options{})

	var out bytes.Buffer
	require.ErrorIs(t, runAudit(context.Background(), &out, a, dir, formatJSON), errAuditFailed)

	var (
		passed    = true
		notebooks int
		checked   int
		deadURLs  []string
		message   string
	)
	d := jx.DecodeBytes(out.Bytes())
	require.NoError(t, d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "passed":
			v, err := d.Bool()
			passed = v

			return err
		case "error":
			v, err := d.Str()
			message = v

			return err
		case "notebooks":
			return d.Arr(func(d *jx.Decoder) error {
				notebooks++

				return d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "checked":
						v, err := d.Int()
						checked = v

						return err
					case "dead":
						return d.Arr(func(d *jx.Decoder) error {
							return d.Obj(func(d *jx.Decoder, key string) error {
								if key != "url" {
									return d.Skip()
								}
								v, err := d.Str()
								deadURLs = append(deadURLs, v)

								return err
							})
						})
					default:
						return d.Skip()
					}
				})
			})
		default:
			return d.Skip()
		}
	}))

	require.False(t, passed)
	require.Equal(t, 1, notebooks)
	require.Equal(t, 2, checked)
	require.Equal(t, []string{"https://gone.example/x"}, deadURLs)
	require.Contains(t, message, "https://gone.example/x is dead")
}

func TestConfigArgs(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"short":        {args: []string{"audit", "-c", "a.yml"}, want: []string{"-c", "a.yml"}},
		"long":         {args: []string{"serve", "--config", "b.yml"}, want: []string{"-c", "b.yml"}},
		"equals":       {args: []string{"--config=c.yml", "audit"}, want: []string{"-c", "c.yml"}},
		"short equals": {args: []string{"-c=d.yml"}, want: []string{"-c", "d.yml"}},
		"absent":       {args: []string{"audit", "--root", "x"}, want: nil},
		"dangling":     {args: []string{"audit", "-c"}, want: nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.want, configArgs(tc.args))
		})
	}
}

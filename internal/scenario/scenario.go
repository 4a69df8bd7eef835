// Package scenario 读取 YAML 写的走法用例：给定局面和格子，列出应有的落点。
package scenario

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"xiangqi/internal/xiangqi"
)

//go:embed default.yaml
var defaultFiles embed.FS

var ErrMismatch = errors.New("scenario mismatch")

// Scenario 一条用例。FEN 为空表示开局。
type Scenario struct {
	Name   string   `yaml:"name"`
	FEN    string   `yaml:"fen,omitempty"`
	Square string   `yaml:"square"`
	Want   []string `yaml:"want"`
}

func Parse(raw []byte) ([]Scenario, error) {
	var out []Scenario
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	for i, sc := range out {
		if strings.TrimSpace(sc.Square) == "" {
			return nil, fmt.Errorf("scenario %d (%s): square is required", i, sc.Name)
		}
	}
	return out, nil
}

func Load(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(raw)
}

// Default 返回内置的用例集
func Default() ([]Scenario, error) {
	raw, err := fs.ReadFile(defaultFiles, "default.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded scenarios: %w", err)
	}
	return Parse(raw)
}

// Check 生成落点并与 Want 比较（不计顺序）。
func Check(sc Scenario) error {
	st := xiangqi.NewGame()
	if sc.FEN != "" {
		var err error
		if st, err = xiangqi.DecodeState(sc.FEN); err != nil {
			return fmt.Errorf("%s: %w", sc.Name, err)
		}
	}
	sq, err := xiangqi.ParseSquare(sc.Square)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}
	moves, err := st.LegalMoves(sq)
	if err != nil {
		return fmt.Errorf("%s: %w", sc.Name, err)
	}

	got := make([]string, len(moves))
	for i, to := range moves {
		got[i] = to.String()
	}
	want := append([]string(nil), sc.Want...)
	sort.Strings(got)
	sort.Strings(want)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		return fmt.Errorf("%w: %s from %s: got [%s], want [%s]",
			ErrMismatch, sc.Name, sc.Square, strings.Join(got, " "), strings.Join(want, " "))
	}
	return nil
}

// Run 逐条检查，返回通过数和失败列表
func Run(scs []Scenario) (int, []error) {
	passed := 0
	var failures []error
	for _, sc := range scs {
		if err := Check(sc); err != nil {
			failures = append(failures, err)
			continue
		}
		passed++
	}
	return passed, failures
}

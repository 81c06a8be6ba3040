// Package scripting hosts the Lua formula layer. Balance formulas that
// designers iterate on (skill chance and cooldown scaling by level) live in
// scripts/*.lua; Go falls back to the static balance table values when a
// formula is absent.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for formula evaluation.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory. A missing directory is fine: every formula call then takes its
// fallback path.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// SkillChance calls the Lua skill_chance(cls_id, level) formula. Falls back
// to the given value when the formula is absent or errors.
func (e *Engine) SkillChance(classID string, level, fallback int) int {
	return e.callIntFormula("skill_chance", classID, level, fallback)
}

// SkillCooldown calls the Lua skill_cooldown(cls_id, level) formula. Falls
// back to the given value when the formula is absent or errors.
func (e *Engine) SkillCooldown(classID string, level, fallback int) int {
	return e.callIntFormula("skill_cooldown", classID, level, fallback)
}

func (e *Engine) callIntFormula(name, classID string, level, fallback int) int {
	fn := e.vm.GetGlobal(name)
	if fn == lua.LNil {
		return fallback
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LString(classID), lua.LNumber(level)); err != nil {
		e.log.Error("lua formula error", zap.String("fn", name), zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	// A formula may decline a class id by returning nil; take the fallback.
	if result == lua.LNil {
		return fallback
	}
	n, ok := result.(lua.LNumber)
	if !ok {
		e.log.Error("lua formula returned non-number", zap.String("fn", name))
		return fallback
	}
	return int(n)
}

func (e *Engine) Close() {
	e.vm.Close()
}

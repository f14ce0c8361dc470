package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/embedded"
	"github.com/gonewx/survivor/pkg/game"
	"github.com/gonewx/survivor/pkg/systems"
	"github.com/gonewx/survivor/pkg/types"
)

const (
	screenWidth  = 800
	screenHeight = 600
	tickSeconds  = 1.0 / 60
)

var (
	configPath = flag.String("config", config.DefaultBalancePath, "balance file, watched for changes when present on disk")
	seed       = flag.Int64("seed", 0, "random seed (0 = time based)")
)

var enemyColors = [types.EnemyTypeCount]color.RGBA{
	types.EnemyUnknown:       {R: 128, G: 128, B: 128, A: 255},
	types.EnemyKoreanTeacher: {R: 220, G: 80, B: 60, A: 255},
	types.EnemyMathTeacher:   {R: 240, G: 160, B: 40, A: 255},
	types.EnemyPrincipal:     {R: 150, G: 50, B: 180, A: 255},
}

// itemKeys grant items in types.AllItemIDs order.
var itemKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7}

// Game is the debug viewer around a game.Simulation.
type Game struct {
	sim     *game.Simulation
	seed    int64
	watcher *config.Watcher

	lastBoss  *systems.BossAttackEvent
	reloadErr error
}

// Update steps the simulation one tick and handles input.
func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.sim.State().GameOver {
		if err := g.restart(g.sim.Config()); err != nil {
			return err
		}
	}

	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		dx--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		dy--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		dy++
	}
	g.sim.SetPlayerDirection(dx, dy)

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if _, err := g.sim.Swing(); err != nil {
			log.Printf("[Viewer] WARNING: swing failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		if _, err := g.sim.ForceSpawnBoss(); err != nil {
			log.Printf("[Viewer] WARNING: boss spawn failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.ClearAll()
	}
	for i, id := range types.AllItemIDs() {
		if i < len(itemKeys) && inpututil.IsKeyJustPressed(itemKeys[i]) {
			if err := g.sim.GrantItem(id); err != nil {
				log.Printf("[Viewer] WARNING: %v", err)
			}
		}
	}

	report := g.sim.Update(tickSeconds)
	for i := range report.BossEvents {
		g.lastBoss = &report.BossEvents[i]
	}
	return nil
}

// pollReload applies a changed balance file. Reloads run on the game loop so
// the simulation never sees a config swap mid-frame.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		if !config.SamePath(path, *configPath) {
			return
		}
		cfg, err := config.LoadBalanceConfig(*configPath)
		if err != nil {
			// keep running with the previous config
			g.reloadErr = err
			log.Printf("[Viewer] WARNING: reload failed: %v", err)
			return
		}
		g.reloadErr = nil
		g.sim.ApplyConfig(cfg)
		log.Printf("[Viewer] Reloaded %s", path)
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("[Viewer] WARNING: watcher error: %v", err)
		}
	default:
	}
}

func (g *Game) restart(cfg *config.BalanceConfig) error {
	sim, err := game.NewSimulation(cfg, g.seed)
	if err != nil {
		return err
	}
	g.sim = sim
	g.lastBoss = nil
	return nil
}

// Draw renders every entity as a flat shape plus a text HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 40, G: 44, B: 52, A: 255})
	em := g.sim.EntityManager()

	for _, id := range ecs.GetEntitiesWith2[*components.ExperiencePickupComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 5, color.RGBA{R: 80, G: 220, B: 120, A: 255}, false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.TrapComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 5, color.RGBA{R: 128, G: 128, B: 128, A: 255}, false)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.MeleeHitboxComponent, *components.PositionComponent](em) {
		hb, _ := ecs.GetComponent[*components.MeleeHitboxComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		clr := color.RGBA{R: 255, G: 255, B: 255, A: 40}
		if hb.Hostile {
			clr = color.RGBA{R: 255, G: 60, B: 60, A: 60}
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(hb.Radius), clr, false)
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
		clr := enemyColors[types.EnemyUnknown]
		if enemy.Type.Valid() {
			clr = enemyColors[enemy.Type]
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok && health.Status == types.StatusInvulnerable {
			clr.A = 120
		}
		drawBox(screen, pos, col, clr)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 4, color.RGBA{R: 255, G: 230, B: 90, A: 255}, false)
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, g.sim.PlayerID()); ok {
		col, _ := ecs.GetComponent[*components.CollisionComponent](em, g.sim.PlayerID())
		clr := color.RGBA{R: 70, G: 140, B: 240, A: 255}
		if health, ok := ecs.GetComponent[*components.HealthComponent](em, g.sim.PlayerID()); ok && health.Status == types.StatusInvulnerable {
			clr.A = 120
		}
		drawBox(screen, pos, col, clr)
	}

	ebitenutil.DebugPrint(screen, g.hud())
}

func drawBox(screen *ebiten.Image, pos *components.PositionComponent, col *components.CollisionComponent, clr color.RGBA) {
	x := pos.X + col.OffsetX - col.Width/2
	y := pos.Y + col.OffsetY - col.Height/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(col.Width), float32(col.Height), clr, false)
}

func (g *Game) hud() string {
	em := g.sim.EntityManager()
	state := g.sim.State()
	stats := g.sim.SpawnerStats()

	hp, maxHP, level := 0, 0, 0
	if health, ok := ecs.GetComponent[*components.HealthComponent](em, g.sim.PlayerID()); ok {
		hp, maxHP = health.Current, health.Maximum
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](em, g.sim.PlayerID()); ok {
		level = player.Level
	}

	s := fmt.Sprintf("HP %d/%d  Lv %d  Kills %d  XP %d\n", hp, maxHP, level, state.Kills, state.ExperienceCollected)
	if inv, ok := ecs.GetComponent[*components.InventoryComponent](em, g.sim.PlayerID()); ok {
		s += "Items"
		for _, item := range inv.Items() {
			s += fmt.Sprintf(" %v:%d", item.ID, item.Level)
		}
		if stats, ok := ecs.GetComponent[*components.PlayerStatsComponent](em, g.sim.PlayerID()); ok && stats.SlowStacks > 0 {
			s += fmt.Sprintf("  slowed x%d", stats.SlowStacks)
		}
		s += "\n"
	}
	s += fmt.Sprintf("Wave %s  %.0fs  enemies %d/%d  next spawn %.1fs  TPS %.0f\n",
		stats.WaveName, stats.Elapsed, stats.ActiveEnemies, stats.PopulationCap, stats.NextSpawnIn, ebiten.ActualTPS())
	if g.lastBoss != nil {
		verb := "casts"
		if g.lastBoss.Telegraph {
			verb = "prepares"
		}
		s += fmt.Sprintf("Boss %d (%v) %s %v\n", g.lastBoss.Boss, g.lastBoss.Phase, verb, g.lastBoss.Pattern)
	}
	if g.reloadErr != nil {
		s += fmt.Sprintf("reload failed: %v\n", g.reloadErr)
	}
	if state.GameOver {
		s += "GAME OVER - press R to restart\n"
	}
	s += "arrows/WASD move, space swing, B boss, C clear, 1-7 items"
	return s
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// loadConfig prefers the file on disk and falls back to the embedded copy.
func loadConfig(path string) (*config.BalanceConfig, bool, error) {
	if _, err := os.Stat(path); err == nil {
		cfg, err := config.LoadBalanceConfig(path)
		return cfg, true, err
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, false, err
	}
	log.Printf("[Viewer] %s not found, using the embedded balance file", path)
	cfg, err := config.LoadEmbeddedBalanceConfig()
	return cfg, false, err
}

func main() {
	flag.Parse()
	embedded.Init(dataFS)

	cfg, onDisk, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load balance config: %v", err)
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	log.Printf("[Viewer] Seed %d", s)

	g := &Game{seed: s}
	if err := g.restart(cfg); err != nil {
		log.Fatalf("Failed to start simulation: %v", err)
	}

	if onDisk {
		w, err := config.NewWatcher(filepath.Dir(*configPath))
		if err != nil {
			log.Printf("[Viewer] WARNING: hot reload disabled: %v", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Survivor - simulation viewer")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

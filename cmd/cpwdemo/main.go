// Command cpwdemo routes a small three-component chip and writes SVG and
// PNG previews of the result.
package main

import (
	"flag"
	"image/color"
	"log"
	"os"

	"github.com/qchip/cpwroute"
	"github.com/qchip/cpwroute/render"
	"github.com/qchip/cpwroute/svg"
)

var (
	obstacleFill = color.RGBA{R: 0xd9, G: 0xde, B: 0xe8, A: 0xff}
	pinFill      = color.RGBA{R: 0xb1, G: 0x36, B: 0x2f, A: 0xff}
)

var pinRefs = []cpwroute.PinRef{
	{Component: "q1", Pin: "readout"},
	{Component: "q1", Pin: "drive"},
	{Component: "q2", Pin: "bus"},
	{Component: "launch1", Pin: "tie"},
	{Component: "launch2", Pin: "tie"},
	{Component: "launch3", Pin: "tie"},
}

func main() {
	var (
		svgOut = flag.String("svg", "chip.svg", "output SVG file")
		pngOut = flag.String("png", "chip.png", "output PNG file")
		pxW    = flag.Int("pxwidth", 1200, "PNG width in pixels")
	)
	flag.Parse()

	// A toy chip, working unit um: two qubits on the left, two launch pads
	// on the right, a ground block in the middle of the lower channel.
	pins := cpwroute.NewPinStore()
	pins.Add(cpwroute.Pin{Component: "q1", Name: "readout",
		Pos: cpwroute.Pt(500, 2200), Dir: cpwroute.V2(1, 0)})
	pins.Add(cpwroute.Pin{Component: "q2", Name: "bus",
		Pos: cpwroute.Pt(500, 800), Dir: cpwroute.V2(1, 0)})
	pins.Add(cpwroute.Pin{Component: "launch1", Name: "tie",
		Pos: cpwroute.Pt(5500, 2200), Dir: cpwroute.V2(-1, 0)})
	pins.Add(cpwroute.Pin{Component: "launch2", Name: "tie",
		Pos: cpwroute.Pt(5500, 400), Dir: cpwroute.V2(-1, 0)})
	pins.Add(cpwroute.Pin{Component: "q1", Name: "drive",
		Pos: cpwroute.Pt(300, 2500), Dir: cpwroute.V2(0, 1)})
	pins.Add(cpwroute.Pin{Component: "launch3", Name: "tie",
		Pos: cpwroute.Pt(1200, 2900), Dir: cpwroute.V2(-1, 0)})

	block := cpwroute.RectObstacle{Name: "gndblock", Box: cpwroute.NewRect(2600, 300, 3400, 1100)}
	q1 := cpwroute.RectObstacle{Name: "q1", Box: cpwroute.NewRect(100, 1900, 500, 2500)}
	q2 := cpwroute.RectObstacle{Name: "q2", Box: cpwroute.NewRect(100, 500, 500, 1100)}
	obstacles := cpwroute.NewObstacleSet(block, q1, q2)

	router := cpwroute.New(pins, cpwroute.WithObstacles(obstacles))

	// Route 1: readout meander tuned to an exact electrical length.
	meander, err := router.Route(cpwroute.RouteConfig{
		Start:       cpwroute.PinRef{Component: "q1", Pin: "readout"},
		End:         cpwroute.PinRef{Component: "launch1", Pin: "tie"},
		Strategies:  []cpwroute.Strategy{cpwroute.StrategyMeander},
		TotalLength: 9000,
		Spacing:     400,
		Fillet:      90,
		Width:       15,
		LeadStart:   cpwroute.LeadConfig{Length: 150},
		LeadEnd:     cpwroute.LeadConfig{Length: 150},
	})
	if err != nil {
		log.Fatalf("meander route failed: %v", err)
	}
	log.Printf("meander: %d points, length %.3f um (target 9000, error %.2e)",
		len(meander.Points()), meander.Length(), meander.LengthError())

	// Route 2: bus line detouring around the ground block.
	detour, err := router.Route(cpwroute.RouteConfig{
		Start:          cpwroute.PinRef{Component: "q2", Pin: "bus"},
		End:            cpwroute.PinRef{Component: "launch2", Pin: "tie"},
		Strategies:     []cpwroute.Strategy{cpwroute.StrategyPathfinder},
		AvoidObstacles: true,
		Step:           100,
		Fillet:         90,
		Width:          15,
		LeadStart:      cpwroute.LeadConfig{Length: 150},
		LeadEnd:        cpwroute.LeadConfig{Length: 150},
	})
	if err != nil {
		log.Fatalf("pathfinder route failed: %v", err)
	}
	log.Printf("detour: %d points, length %.3f um", len(detour.Points()), detour.Length())

	// Route 3: short drive line, plain elbow.
	drive, err := router.Route(cpwroute.RouteConfig{
		Start:  cpwroute.PinRef{Component: "q1", Pin: "drive"},
		End:    cpwroute.PinRef{Component: "launch3", Pin: "tie"},
		Fillet: 90,
		Width:  15,
	})
	if err != nil {
		log.Fatalf("drive route failed: %v", err)
	}
	log.Printf("drive: %d points, length %.3f um", len(drive.Points()), drive.Length())

	bounds := cpwroute.NewRect(0, 0, 6000, 3000)

	sf, err := os.Create(*svgOut)
	if err != nil {
		log.Fatalf("creating %s: %v", *svgOut, err)
	}
	defer sf.Close()
	ex := svg.NewExporter(sf, bounds, "um")
	for _, o := range []cpwroute.RectObstacle{block, q1, q2} {
		ex.Obstacle(o)
	}
	if err := meander.Emit(ex, "readout"); err != nil {
		log.Fatalf("emitting meander: %v", err)
	}
	if err := detour.Emit(ex, "bus"); err != nil {
		log.Fatalf("emitting detour: %v", err)
	}
	if err := drive.Emit(ex, "drive"); err != nil {
		log.Fatalf("emitting drive: %v", err)
	}
	for _, ref := range pinRefs {
		p, _ := pins.ResolvePin(ref.Component, ref.Pin)
		ex.Pin(p, 20)
	}
	if err := ex.Close(); err != nil {
		log.Fatalf("closing SVG: %v", err)
	}

	preview := render.NewPreview(bounds, *pxW)
	for _, o := range []cpwroute.RectObstacle{block, q1, q2} {
		preview.Obstacle(o, obstacleFill)
	}
	if err := meander.Emit(preview, "readout"); err != nil {
		log.Fatalf("rendering meander: %v", err)
	}
	if err := detour.Emit(preview, "bus"); err != nil {
		log.Fatalf("rendering detour: %v", err)
	}
	if err := drive.Emit(preview, "drive"); err != nil {
		log.Fatalf("rendering drive: %v", err)
	}
	for _, ref := range pinRefs {
		p, _ := pins.ResolvePin(ref.Component, ref.Pin)
		preview.Pin(p, 20, pinFill)
	}
	if err := preview.SavePNG(*pngOut); err != nil {
		log.Fatalf("saving %s: %v", *pngOut, err)
	}

	log.Printf("wrote %s and %s", *svgOut, *pngOut)
}

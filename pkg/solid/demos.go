package solid

import (
	"fmt"
	"io"

	"github.com/bft-labs/solid/internal/dip"
	"github.com/bft-labs/solid/internal/isp"
	"github.com/bft-labs/solid/internal/lsp"
	"github.com/bft-labs/solid/internal/ocp"
	"github.com/bft-labs/solid/internal/srp"
	"github.com/bft-labs/solid/pkg/log"
)

func builtins(out io.Writer, logger log.Logger) []Demo {
	return []Demo{
		&srpDemo{out: out, log: logger},
		&ocpDemo{out: out},
		&lspDemo{out: out},
		&ispDemo{out: out},
		&dipDemo{out: out, log: logger},
	}
}

type srpDemo struct {
	out io.Writer
	log log.Logger
}

func (*srpDemo) Name() string      { return "srp" }
func (*srpDemo) Principle() string { return "Single Responsibility" }

func (d *srpDemo) Run(v Variant) error {
	if v == VariantBefore {
		r := srp.NewReport(d.log)
		r.Generate()
		r.SaveToFile()
		_, err := fmt.Fprintln(d.out, "Report generated and saved by one type.")
		return err
	}
	srp.NewReportGenerator(d.log).Generate()
	srp.NewReportSaver(d.log).Save()
	_, err := fmt.Fprintln(d.out, "Report generated and saved by separate types.")
	return err
}

type ocpDemo struct {
	out io.Writer
}

func (*ocpDemo) Name() string      { return "ocp" }
func (*ocpDemo) Principle() string { return "Open/Closed" }

func (d *ocpDemo) Run(v Variant) error {
	shapes := []ocp.Shape{
		ocp.Rectangle{Width: 3, Height: 4},
		ocp.Circle{Radius: 2},
		ocp.Triangle{Base: 3, Height: 4},
	}
	for _, s := range shapes {
		area := ocp.ComputeArea(s)
		if v == VariantBefore {
			area = ocp.LegacyArea(s)
		}
		if _, err := fmt.Fprintf(d.out, "%T area: %.3f\n", s, area); err != nil {
			return err
		}
	}
	return nil
}

type lspDemo struct {
	out io.Writer
}

func (*lspDemo) Name() string      { return "lsp" }
func (*lspDemo) Principle() string { return "Liskov Substitution" }

func (d *lspDemo) Run(v Variant) error {
	if v == VariantBefore {
		return lsp.LaunchAll(lsp.NewLegacyBird(d.out), lsp.NewLegacyPenguin(d.out))
	}
	lsp.FlyAll(lsp.NewBird(d.out), lsp.NewPenguin(d.out))
	return nil
}

type ispDemo struct {
	out io.Writer
}

func (*ispDemo) Name() string      { return "isp" }
func (*ispDemo) Principle() string { return "Interface Segregation" }

func (d *ispDemo) Run(v Variant) error {
	if v == VariantBefore {
		m, r := isp.NewLegacyManager(d.out), isp.NewLegacyRobot(d.out)
		if err := m.Work(); err != nil {
			return err
		}
		if err := r.Work(); err != nil {
			return err
		}
		return isp.LunchBreak(m, r)
	}
	m, r := isp.NewManager(d.out), isp.NewRobot(d.out)
	isp.WorkShift(m, r)
	isp.Lunch(m)
	return nil
}

type dipDemo struct {
	out io.Writer
	log log.Logger
}

func (*dipDemo) Name() string      { return "dip" }
func (*dipDemo) Principle() string { return "Dependency Inversion" }

func (d *dipDemo) Run(v Variant) error {
	if v == VariantBefore {
		dip.NewLegacySwitch(d.out).Toggle()
		return nil
	}
	for _, dev := range []dip.Switchable{dip.NewLightBulb(d.out), dip.NewFan(d.out)} {
		dip.NewSwitch(dev, dip.WithOutput(d.out), dip.WithLogger(d.log)).Toggle()
	}
	return nil
}

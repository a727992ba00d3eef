package calculator

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"fdtd/model"
)

// Driver 按固定步数推进计算，每 throttle 步写一次快照。
// 场数组在整个计算过程中由 Driver 独占。
type Driver struct {
	param    Parameter
	field    *Field
	throttle int
	writer   Writer

	t     int
	state State
	err   error
}

func NewDriver(cfg model.Config, w Writer) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, f, err := initialize(cfg.Grid)
	if err != nil {
		return nil, err
	}
	return newDriver(p, f, cfg.Output.Throttle, w), nil
}

func newDriver(p Parameter, f *Field, throttle int, w Writer) *Driver {
	if throttle < 1 {
		throttle = 1
	}
	return &Driver{
		param:    p,
		field:    f,
		throttle: throttle,
		writer:   w,
		state:    NotStarted,
	}
}

func (d *Driver) State() State         { return d.state }
func (d *Driver) Step() int            { return d.t }
func (d *Driver) Parameter() Parameter { return d.param }
func (d *Driver) Field() *Field        { return d.field }
func (d *Driver) Err() error           { return d.err }

// Tick 推进一步：t++，更新场，t 为 throttle 的整数倍时写快照。
// 返回 false 表示计算已经结束（Finished 或 Failed）。
func (d *Driver) Tick() (bool, error) {
	switch d.state {
	case Finished:
		return false, nil
	case Failed:
		return false, d.err
	case NotStarted:
		d.state = Running
	}

	if d.t >= d.param.Steps {
		d.state = Finished
		return false, nil
	}

	d.t++
	d.field.Step(d.param)

	if d.t%d.throttle == 0 {
		if err := d.snapshot(); err != nil {
			d.state = Failed
			d.err = &StepError{Step: d.t, Err: err}
			return false, d.err
		}
	}

	if d.t == d.param.Steps {
		d.state = Finished
		return false, nil
	}
	return true, nil
}

func (d *Driver) snapshot() error {
	s := Measure(d.t, d.field, d.param.DZ)
	if !s.Finite() || hasNaN(d.field) {
		return ErrUnstable
	}
	log.WithFields(log.Fields{
		"step":   s.Step,
		"maxE":   s.MaxE,
		"maxH":   s.MaxH,
		"energy": s.Energy,
	}).Debug("写入快照")
	if d.writer == nil {
		return nil
	}
	if err := d.writer.Write(d.t, d.field.Electric(), d.field.Magnetic()); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Run 一直迭代到结束，快照写入失败时立即返回
func (d *Driver) Run() error {
	if d.state == Finished || d.state == Failed {
		return ErrFinished
	}
	start := time.Now()
	log.WithFields(log.Fields{
		"steps":    d.param.Steps,
		"throttle": d.throttle,
	}).Info("开始计算")

	for {
		running, err := d.Tick()
		if err != nil {
			log.WithError(err).Error("计算中止")
			return err
		}
		if !running {
			break
		}
	}

	log.WithFields(log.Fields{
		"steps":   d.t,
		"elapsed": time.Since(start).Seconds(),
	}).Info("计算完成")
	return nil
}

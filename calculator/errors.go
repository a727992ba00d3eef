package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch 磁场长度必须等于电场长度减一
	ErrLengthMismatch = errors.New("calculator: magnetic length must be electric length - 1")

	// ErrUnstable 场值出现 NaN 或 Inf
	ErrUnstable = errors.New("calculator: field diverged (NaN or Inf detected)")

	// ErrFinished 计算已经结束或已失败
	ErrFinished = errors.New("calculator: simulation already finished")
)

// StepError 记录出错时的步数
type StepError struct {
	Step int
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

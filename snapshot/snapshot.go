package snapshot

// Writer 与 calculator.Writer 签名一致
type Writer interface {
	Write(step int, electric, magnetic []float64) error
}

// Multi 依次调用每个 Writer，遇到第一个错误即返回
type Multi []Writer

func (m Multi) Write(step int, electric, magnetic []float64) error {
	for _, w := range m {
		if err := w.Write(step, electric, magnetic); err != nil {
			return err
		}
	}
	return nil
}

package deque

import (
	"fdtd/model"
)

type ArrDeque struct {
	arr []*model.Frame

	// 头部下标
	start int
	// 元素个数
	size int
	// 容量
	capacity int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 0 {
		capacity = 0
	}
	return &ArrDeque{
		arr:      make([]*model.Frame, capacity),
		capacity: capacity,
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return ad.capacity
}

func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % ad.capacity
}

func (ad *ArrDeque) Get(i int) *model.Frame {
	if i < 0 || i >= ad.size {
		panic("index out of length")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque) Traverse(f func(i int, item *model.Frame)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

func (ad *ArrDeque) AddLast(item *model.Frame) {
	if ad.capacity == 0 {
		return
	}
	if ad.IsFull() {
		ad.RemoveFirst()
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
}

func (ad *ArrDeque) RemoveLast() *model.Frame {
	if ad.IsEmpty() {
		return nil
	}
	k := ad.index(ad.size - 1)
	item := ad.arr[k]
	ad.arr[k] = nil
	ad.size--
	return item
}

func (ad *ArrDeque) AddFirst(item *model.Frame) {
	if ad.capacity == 0 {
		return
	}
	if ad.IsFull() {
		ad.RemoveLast()
	}
	ad.start = (ad.start - 1 + ad.capacity) % ad.capacity
	ad.arr[ad.start] = item
	ad.size++
}

func (ad *ArrDeque) RemoveFirst() *model.Frame {
	if ad.IsEmpty() {
		return nil
	}
	item := ad.arr[ad.start]
	ad.arr[ad.start] = nil
	ad.start = (ad.start + 1) % ad.capacity
	ad.size--
	return item
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == ad.capacity
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}

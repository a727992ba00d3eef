/**
 *
 * 利用数组实现的定长双端队列，用于保存最近若干个快照帧
 * 新客户端连接时可以从中取得历史数据
 *
 */

package deque

import "fdtd/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 获取队列中对应下标的帧，0 为最早的一帧
	Get(i int) *model.Frame

	// 正向遍历
	Traverse(f func(i int, item *model.Frame))

	// 在队列结尾增加一个元素，队列满时丢弃头部元素
	AddLast(item *model.Frame)

	// 在队列结尾删除一个元素
	RemoveLast() *model.Frame

	// 在队列头部增加一个元素，队列满时丢弃尾部元素
	AddFirst(item *model.Frame)

	// 在队列头部删除一个元素
	RemoveFirst() *model.Frame

	IsFull() bool

	IsEmpty() bool
}

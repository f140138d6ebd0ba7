package main

type AnimationTag int

const (
	AnimationTagNone AnimationTag = iota

	AnimationTagPresetFade
)

// CallbackAnimation runs Update every tick until Done reports true.
// Skip must jump the animation to its finished state in one call.
type CallbackAnimation struct {
	Update func()
	Skip   func()
	Done   func() bool

	// optional
	AfterDone func()

	Tag AnimationTag
}

func AnimationQueueUpdate(queue *CircularQueue[CallbackAnimation]) {
	if !queue.IsEmpty() {
		anim := queue.At(0)
		anim.Update()

		if anim.Done() {
			queue.Dequeue()

			if anim.AfterDone != nil {
				anim.AfterDone()
			}
		}
	}
}

func AnimationQueueSkipAll(queue *CircularQueue[CallbackAnimation]) {
	for !queue.IsEmpty() {
		anim := queue.Dequeue()

		anim.Skip()

		if anim.AfterDone != nil {
			anim.AfterDone()
		}
	}
}

package conformity

// Observer is told about progress. NodeDone is called once per node after
// its scores are final, never concurrently with itself; done counts the
// nodes finished so far, out of total.
type Observer interface {
	NodeDone(node string, done, total int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(node string, done, total int)

// NodeDone calls f.
func (f ObserverFunc) NodeDone(node string, done, total int) { f(node, done, total) }

type nopObserver struct{}

func (nopObserver) NodeDone(string, int, int) {}

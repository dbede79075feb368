package office

// Copier is a printer and a scanner sharing one power state.
//
// Print and scan counts are independent of each other and of the
// power-cycle counter, which the embedded Device owns.
type Copier struct {
	Device

	printCount int
	scanCount  int
}

// NewCopier creates a copier in the Off state. An empty id gets a generated UUID.
func NewCopier(id string, opts ...Option) *Copier {
	c := &Copier{}
	c.init(id, KindCopier, opts)
	return c
}

// PrintCounter returns the number of documents printed.
func (c *Copier) PrintCounter() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.printCount
}

// ScanCounter returns the number of documents scanned, across all formats.
func (c *Copier) ScanCounter() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scanCount
}

// Print prints doc. While the copier is off nothing happens, even for a nil doc.
func (c *Copier) Print(doc *Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.print(doc)
}

// Scan scans a new document in format f.
//
// While the copier is off it returns (nil, nil). An unsupported format
// returns ErrUnsupportedFormat and leaves the scan counter untouched.
func (c *Copier) Scan(f Format) (*Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scan(f)
}

// ScanAndPrint scans an image and prints it. Both steps run under one lock,
// so the power state cannot change in between. While off it does nothing.
func (c *Copier) ScanAndPrint() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc, err := c.scan(FormatImage)
	if err != nil {
		return err
	}
	return c.print(doc)
}

// print implements Print. Caller must hold c.mu.
func (c *Copier) print(doc *Document) error {
	if !c.isOn() {
		return nil
	}
	if doc == nil {
		return ErrNilDocument
	}

	c.printCount++
	c.emit(Event{Action: ActionPrint, FileName: doc.FileName(), Counter: c.printCount})
	return nil
}

// scan implements Scan. Caller must hold c.mu.
func (c *Copier) scan(f Format) (*Document, error) {
	if !c.isOn() {
		return nil, nil
	}
	// Built before the increment so a bad format leaves no trace.
	doc, err := newDocument(f, c.scanCount+1)
	if err != nil {
		return nil, err
	}

	c.scanCount++
	c.emit(Event{Action: ActionScan, FileName: doc.FileName(), Counter: c.scanCount})
	return doc, nil
}

package pdfengine

// Document-editing operations. Each one validates its arguments first, then
// delegates to the binding under the guard. There is no partial success:
// every call either returns a complete document or fails and returns nothing,
// and no failure is retried by the facade.

// Merge returns one document holding all pages of first followed by all
// pages of second.
func (e *Engine) Merge(first, second Source) ([]byte, error) {
	if err := validateSource("first", first); err != nil {
		return nil, err
	}
	if err := validateSource("second", second); err != nil {
		return nil, err
	}

	var out []byte
	err := e.withBinding("Merge", ErrEdit, func(b Binding) error {
		res, err := b.Merge(first, second)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Split extracts the inclusive zero-based page range [pageFrom, pageTo] into
// a new document. pageFrom == pageTo extracts a single page.
func (e *Engine) Split(src Source, pageFrom, pageTo int) ([]byte, error) {
	if err := validateSource("source", src); err != nil {
		return nil, err
	}
	if err := validateNonNegative("pageFrom", pageFrom); err != nil {
		return nil, err
	}
	if err := validateNonNegative("pageTo", pageTo); err != nil {
		return nil, err
	}
	if err := validateOrdered("pageFrom", "pageTo", pageFrom, pageTo); err != nil {
		return nil, err
	}

	var out []byte
	err := e.withBinding("Split", ErrEdit, func(b Binding) error {
		res, err := b.Split(src, pageFrom, pageTo)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Unlock removes document-level access restrictions and returns the unlocked
// document. An empty password means "try without a password".
func (e *Engine) Unlock(src Source, password string) ([]byte, error) {
	if err := validateSource("source", src); err != nil {
		return nil, err
	}

	var out []byte
	err := e.withBinding("Unlock", ErrEdit, func(b Binding) error {
		res, err := b.Unlock(src, password)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ImagesToDocument produces one document whose pages are the given images in
// input order.
func (e *Engine) ImagesToDocument(images []ImageDescriptor) ([]byte, error) {
	if err := validateImages(images); err != nil {
		return nil, err
	}

	var out []byte
	err := e.withBinding("ImagesToDocument", ErrEdit, func(b Binding) error {
		res, err := b.ImportImages(images)
		if err != nil {
			return err
		}
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

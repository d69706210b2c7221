/*
Package atomicfile writes a file so that it either has complete new
content or is left untouched.

Data is written to a temporary file in the same directory and renamed
over the destination in Close(). If Write() or Close() fail, or
RemoveIfNotClosed() was called first, the temporary file is deleted.

	func writeAtomically(path string, data []byte) error {
		f, err := atomicfile.New(path)
		if err != nil {
			return err
		}
		defer f.RemoveIfNotClosed()

		if _, err = f.Write(data); err != nil {
			return err
		}
		return f.Close()
	}
*/
package atomicfile

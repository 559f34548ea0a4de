package imsz

// The order matters: an AVIF ftyp box of 256 bytes starts with the ICO
// magic, so AVIF is tried first.
func init() {
	registerFormat(GIF, "GIF87a", decodeGIF)
	registerFormat(GIF, "GIF89a", decodeGIF)
	registerFormat(PNG, pngHeader, decodePNG)
	registerFormat(BMP, "BM", decodeBMP)
	registerFormat(JPEG, "\xff\xd8", decodeJPEG)
	registerFormat(WEBP, "RIFF????WEBP", decodeWEBP)
	registerFormat(QOI, qoiMagic, decodeQOI)
	registerFormat(PSD, psdMagic, decodePSD)
	registerFormat(XCF, "gimp xcf", decodeXCF)
	registerBrandedFormat(AVIF, "????ftyp????", isAVIF, decodeAVIF)
	registerFormat(ICO, icoMagic, decodeICO)
	registerFormat(TIFF, leHeader, decodeTIFF)
	registerFormat(TIFF, beHeader, decodeTIFF)
}

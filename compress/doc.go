// Package compress provides the codecs used for compressed dataset archives.
//
// Kinetics datasets are small plain-text tables of time/concentration pairs.
// Instruments and LIMS exports frequently deliver them compressed (.csv.gz,
// .csv.zst), and archived runs are kept compressed on disk. This package
// offers a uniform Codec interface over the supported algorithms so the
// dataset reader can ingest any of them transparently:
//
//   - Gzip: interoperability default, readable by standard tooling
//   - Zstd: best ratio for long-term archives
//   - S2: fastest round-trip, useful for bulk re-analysis pipelines
//   - LZ4: fast block compression
//   - NoOp: plain-text passthrough
//
// Codecs are selected by format.CompressionType, typically derived from the
// file extension via format.DetectCompression:
//
//	codec, err := compress.GetCodec(format.DetectCompression("run42.csv.zst"))
//	if err != nil {
//	    return err
//	}
//	text, err := codec.Decompress(raw)
//
// All codecs operate on whole in-memory payloads; datasets are tens of
// samples, so streaming is unnecessary.
package compress

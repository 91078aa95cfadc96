// internal/cli/help.go
package cli

import (
	"fmt"
	"io"
)

const usageText = `Usage: goxzip [OPTION]... [FILE]...
Compress or decompress FILEs in the .xz format.

Operation mode:
  -z, --compress      force compression
  -d, --decompress    force decompression
  -t, --test          test compressed file integrity
  -l, --list          list information about files

Operation modifiers:
  -k, --keep          keep (don't delete) input files
  -f, --force         force overwrite of output file
  -c, --stdout        write to standard output and don't delete input files
  -S, --suffix=.SUF   use the suffix '.SUF' on compressed files
      --files[=FILE]  read filenames to process from FILE; if FILE is
                      omitted, filenames are read from the standard input;
                      filenames must be terminated with the newline character
      --files0[=FILE] like --files but use the null character as terminator

Compression options:
  -F, --format=FMT    file format to encode or decode; possible values are
                      'auto' (default), 'xz', 'lzma' and 'raw'
  -C, --check=CHECK   integrity check type: 'none', 'crc32', 'crc64'
                      (default) or 'sha256'
  -1 ... -9           compression preset; default is 7
  -M, --memory=NUM    use at most NUM bytes of memory (suffixes k, M and G
                      are supported)
  -T, --threads=NUM   use at most NUM threads

Custom filter chain for compression (alternative for using presets):
      --lzma1[=OPTS]  LZMA1 or LZMA2; OPTS is a comma-separated list of zero
      --lzma2[=OPTS]  or more of the following options (valid values; default):
                        dict=NUM   dictionary size in bytes
                        lc=NUM     number of literal context bits (0-4; 3)
                        lp=NUM     number of literal position bits (0-4; 0)
                        pb=NUM     number of position bits (0-4; 2)
                        mode=MODE  compression mode (fast, normal; normal)
                        nice=NUM   nice length of a match (2-273; 64)
                        mf=NAME    match finder (hc3, hc4, bt2, bt3, bt4; bt4)
                        depth=NUM  maximum search depth; 0=automatic (default)
      --x86           x86 filter
      --powerpc       PowerPC (big endian) filter
      --ia64          IA64 (Itanium) filter
      --arm           ARM filter
      --armthumb      ARM-Thumb filter
      --sparc         SPARC filter
      --delta[=OPTS]  delta filter; valid OPTS (valid values; default):
                        dist=NUM   distance between bytes being
                                   subtracted from each other (1-256; 1)
      --subblock[=OPTS] subblock filter; valid OPTS (valid values; default):
                        size=NUM   number of bytes of data per subblock
                        rle=NUM    run-length encoder chunk size (0-256; 0)

Other options:
  -q, --quiet         suppress warnings; specify twice to suppress errors too
  -v, --verbose       be verbose; specify twice for even more verbose
  -h, --help          display this help and exit
  -V, --version       display version and exit

With no FILE, or when FILE is -, read standard input.
`

// Usage writes the help text.
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}

//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>
#include <CoreFoundation/CoreFoundation.h>
#include <stdlib.h>

typedef struct {
    char *owner;
    char *title;
    int pid;
    int layer;
    int has_layer;
    int number;
    int has_number;
    double x;
    double y;
    double width;
    double height;
} gwi_window;

static char *gwi_copy_string(CFTypeRef value) {
    if (value == NULL || CFGetTypeID(value) != CFStringGetTypeID()) {
        return NULL;
    }
    CFStringRef s = (CFStringRef)value;
    CFIndex max = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
    char *buf = malloc(max);
    if (buf == NULL) {
        return NULL;
    }
    if (!CFStringGetCString(s, buf, max, kCFStringEncodingUTF8)) {
        free(buf);
        return NULL;
    }
    return buf;
}

static int gwi_get_int(CFDictionaryRef dict, CFStringRef key, int *out) {
    CFTypeRef value = CFDictionaryGetValue(dict, key);
    if (value == NULL || CFGetTypeID(value) != CFNumberGetTypeID()) {
        return 0;
    }
    return CFNumberGetValue((CFNumberRef)value, kCFNumberIntType, out) ? 1 : 0;
}

static void gwi_get_double(CFDictionaryRef dict, CFStringRef key, double *out) {
    CFTypeRef value = CFDictionaryGetValue(dict, key);
    if (value == NULL || CFGetTypeID(value) != CFNumberGetTypeID()) {
        return;
    }
    CFNumberGetValue((CFNumberRef)value, kCFNumberDoubleType, out);
}

// gwi_list_windows copies the on-screen window list in window server order.
static int gwi_list_windows(gwi_window **out, int *count) {
    *out = NULL;
    *count = 0;

    CFArrayRef list = CGWindowListCopyWindowInfo(kCGWindowListOptionOnScreenOnly, kCGNullWindowID);
    if (list == NULL) {
        return -1;
    }
    CFIndex n = CFArrayGetCount(list);
    if (n == 0) {
        CFRelease(list);
        return 0;
    }

    gwi_window *windows = calloc(n, sizeof(gwi_window));
    if (windows == NULL) {
        CFRelease(list);
        return -1;
    }

    for (CFIndex i = 0; i < n; i++) {
        CFDictionaryRef info = (CFDictionaryRef)CFArrayGetValueAtIndex(list, i);
        gwi_window *w = &windows[i];

        w->owner = gwi_copy_string(CFDictionaryGetValue(info, kCGWindowOwnerName));
        w->title = gwi_copy_string(CFDictionaryGetValue(info, kCGWindowName));
        gwi_get_int(info, kCGWindowOwnerPID, &w->pid);
        w->has_layer = gwi_get_int(info, kCGWindowLayer, &w->layer);
        w->has_number = gwi_get_int(info, kCGWindowNumber, &w->number);

        CFTypeRef bounds = CFDictionaryGetValue(info, kCGWindowBounds);
        if (bounds != NULL && CFGetTypeID(bounds) == CFDictionaryGetTypeID()) {
            CFDictionaryRef b = (CFDictionaryRef)bounds;
            gwi_get_double(b, CFSTR("X"), &w->x);
            gwi_get_double(b, CFSTR("Y"), &w->y);
            gwi_get_double(b, CFSTR("Width"), &w->width);
            gwi_get_double(b, CFSTR("Height"), &w->height);
        }
    }

    CFRelease(list);
    *out = windows;
    *count = (int)n;
    return 0;
}

static void gwi_free_windows(gwi_window *windows, int count) {
    if (windows == NULL) {
        return;
    }
    for (int i = 0; i < count; i++) {
        free(windows[i].owner);
        free(windows[i].title);
    }
    free(windows);
}
*/
import "C"
import (
	"fmt"
	"unsafe"

	"github.com/mj1618/get-window-id/internal/model"
)

// DarwinWindowLister implements platform.WindowLister for macOS.
type DarwinWindowLister struct{}

// NewWindowLister creates a new macOS window lister.
func NewWindowLister() *DarwinWindowLister {
	return &DarwinWindowLister{}
}

// ListOnScreenWindows returns all on-screen windows using CGWindowListCopyWindowInfo.
// Every window is returned, in window server order; layer filtering is left
// to callers.
func (l *DarwinWindowLister) ListOnScreenWindows() ([]model.Window, error) {
	var cWindows *C.gwi_window
	var cCount C.int

	if C.gwi_list_windows(&cWindows, &cCount) != 0 {
		return nil, fmt.Errorf("failed to enumerate windows")
	}
	defer C.gwi_free_windows(cWindows, cCount)

	count := int(cCount)
	windows := make([]model.Window, 0, count)
	if count == 0 {
		return windows, nil
	}

	for _, cw := range unsafe.Slice(cWindows, count) {
		r := rawWindow{
			pid:       int(cw.pid),
			layer:     int(cw.layer),
			hasLayer:  cw.has_layer != 0,
			number:    int(cw.number),
			hasNumber: cw.has_number != 0,
			x:         float64(cw.x),
			y:         float64(cw.y),
			width:     float64(cw.width),
			height:    float64(cw.height),
		}
		if cw.owner != nil {
			r.owner = C.GoString(cw.owner)
		}
		if cw.title != nil {
			r.title = C.GoString(cw.title)
		}
		windows = append(windows, r.window())
	}
	return windows, nil
}

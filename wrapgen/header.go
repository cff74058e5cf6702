package wrapgen

import (
	"fmt"
	"time"
)

// timeFormat is the layout of the artifact's generation stamp.
const timeFormat = "2006-01-02 15:04:05"

// preamble is the fixed top of the generated module. The single %s is the
// generation timestamp; everything after it is static text, including the
// dummy fallback for machines without the win32com bindings.
const preamble = `#! /usr/bin/env python
# -*- coding: utf-8 -*-
"""
Provide class to wrap all available FRED commands
===============================================================================

%s - File generated

WARNING - This file is machine generated by apiwrapgen.
Customizing functions here will override the intended API function, and any
changes will be lost the next time apiwrapgen runs. Edit the descriptor
stores and regenerate instead.

"""
try:
    import win32com.client as w32
except:
    # Load a dummy
    print("WARNING: win32com not available. Loading dummy library.")
    from w32dummy import WinMethods
    w32 = WinMethods()

class Wrap(object):
    """
    Class for wrapping all of the FRED functions, subroutines and
    datastructures in one place with a consistent API and minimal quirks.

    Using this class for FRED programming may not be the most efficient
    computationally, but it does provide an easier transition for
    controlling FRED through python than just using the raw win32com API.

    Quirks caused by problematic parameter passing through the w32 API
    and/or inconsistent return structures are averted by wrapping all
    functions and subroutines with CreateLib().

    If imported into the global namespace, allows writing scripts that are
    nearly execution compatible with native FRED VBScript.
    """
    def __init__(self, dobj):
        self._dobj = dobj

    @property
    def dobj(self):
        """
        Attribute property for the FRED COM Interface document object
        """
        return self._dobj
`

// renderPreamble stamps the fixed module header. The timestamp is the only
// part of the artifact that varies between runs over unchanged inputs.
func renderPreamble(now time.Time) string {
	return fmt.Sprintf(preamble, now.Format(timeFormat))
}
